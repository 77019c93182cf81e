/*
Copyright 2026 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres/test/api"
)

var _ = Describe("Security and Authentication", Label("auth"), func() {
	Context("When registering an account", func() {
		Describe("Given a predefined user and a password", func() {
			It("should return the user ID and a token", func() {
				// Given: A predefined user's email and a password
				// When: I register
				resp, err := client.Do(ctx, &api.Request{
					Method: http.MethodPost,
					Path:   client.Endpoints().Register(),
					Body:   api.RegisterBody,
				})
				Expect(err).NotTo(HaveOccurred())

				// Then: Registration should succeed
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("id", api.RegisteredUserID))
				Expect(resp).To(api.HaveJSONField("token", api.RegisteredToken))
			})
		})

		Describe("Given no password", func() {
			It("should reject the request with 400 Bad Request", func() {
				// Given: An email but no password
				payload := api.NewCredentials().
					WithEmail(api.FailedRegisterEmail).
					Build()

				// When: I register
				resp, err := client.Register(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				// Then: The request should be rejected with the reason
				Expect(resp).To(api.HaveStatus(http.StatusBadRequest))
				Expect(resp).To(api.HaveJSONField("error", api.MissingPasswordMessage))
			})
		})
	})

	Context("When logging in", func() {
		Describe("Given a predefined user and a password", func() {
			It("should return a token", func() {
				// Given: A predefined user's email and a password
				// When: I log in
				resp, err := client.Do(ctx, &api.Request{
					Method: http.MethodPost,
					Path:   client.Endpoints().Login(),
					Body:   api.LoginBody,
				})
				Expect(err).NotTo(HaveOccurred())

				// Then: Login should succeed
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("token", api.RegisteredToken))
			})

			It("should accept the same credentials built field by field", func() {
				payload := api.NewCredentials().
					WithEmail(api.RegisteredEmail).
					WithPassword(api.LoginPassword).
					Build()

				resp, err := client.Login(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("token", api.RegisteredToken))
			})
		})

		Describe("Given no password", func() {
			It("should reject the request with 400 Bad Request", func() {
				// Given: An email but no password
				payload := api.NewCredentials().
					WithEmail(api.FailedLoginEmail).
					Build()

				// When: I log in
				resp, err := client.Login(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				// Then: The request should be rejected with the reason
				Expect(resp).To(api.HaveStatus(http.StatusBadRequest))
				Expect(resp).To(api.HaveJSONField("error", api.MissingPasswordMessage))
			})
		})
	})
})
