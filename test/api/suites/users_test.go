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

var _ = Describe("User Management", Label("users"), func() {
	Context("When reading a single user", func() {
		Describe("Given a user that exists", func() {
			It("should return the user and the support banner", func() {
				// Given: A predefined user
				// When: I request that user
				resp, err := client.GetUser(ctx, api.SingleUserID)
				Expect(err).NotTo(HaveOccurred())

				// Then: The user should be returned with 200 OK
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("data.id", 2))
				Expect(resp).To(api.HaveJSONField("data.email", api.SingleUserEmail))
				Expect(resp).To(api.HaveJSONField("data.first_name", api.SingleUserFirstName))
				Expect(resp).To(api.HaveJSONField("data.last_name", api.SingleUserLastName))
				Expect(resp).To(api.HaveJSONField("data.avatar", api.SingleUserAvatar))

				// And: The support banner should be attached
				Expect(resp).To(api.HaveJSONField("support.url", api.SupportURL))
				Expect(resp).To(api.HaveJSONField("support.text", api.SupportText))
			})

			It("should return identical results on repeated reads", func() {
				// Given: A predefined user
				// When: I request that user several times
				first, err := client.GetUser(ctx, api.SingleUserID)
				Expect(err).NotTo(HaveOccurred())
				Expect(first).To(api.HaveStatus(http.StatusOK))

				expected, err := first.Field("data")
				Expect(err).NotTo(HaveOccurred())

				for range 3 {
					resp, err := client.GetUser(ctx, api.SingleUserID)
					Expect(err).NotTo(HaveOccurred())

					// Then: Every read should be identical
					Expect(resp).To(api.HaveStatus(http.StatusOK))
					Expect(resp).To(api.HaveJSONField("data", expected.Value()))
				}
			})
		})

		Describe("Given a user that doesn't exist", func() {
			It("should reject lookups of unknown entries with 404 Not Found", func() {
				// Given: An ID outside the predefined data
				// When: I request it from the resource collection
				resp, err := client.GetResource(ctx, api.MissingResourceID)
				Expect(err).NotTo(HaveOccurred())

				// Then: The request should be rejected with 404 Not Found
				Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			})

			It("should reject lookups of unknown users with 404 Not Found", func() {
				// Given: An ID outside the predefined users
				// When: I request that user
				resp, err := client.GetUser(ctx, api.MissingUserID)
				Expect(err).NotTo(HaveOccurred())

				// Then: The request should be rejected with 404 Not Found
				Expect(resp).To(api.HaveStatus(http.StatusNotFound))
				// And: The body should be an empty object
				Expect(resp.Body).To(MatchJSON(`{}`))
			})

			It("should return identical results on repeated lookups", func() {
				for range 3 {
					resp, err := client.GetResource(ctx, api.MissingResourceID)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp).To(api.HaveStatus(http.StatusNotFound))
				}
			})
		})
	})

	Context("When listing users", func() {
		Describe("Given a page number", func() {
			It("should return that page of users", func() {
				// Given: The second page
				// When: I list users
				resp, err := client.ListUsers(ctx, api.ListOptions{Page: 2})
				Expect(err).NotTo(HaveOccurred())

				// Then: The second page should be returned
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("page", 2))
				Expect(resp).To(api.HaveJSONField("per_page", api.DefaultPerPage))
				Expect(resp).To(api.HaveJSONField("total", api.TotalUsers))
				Expect(resp).To(api.HaveJSONField("total_pages", api.TotalPages))

				// And: It should start where the first page ends
				Expect(resp).To(api.HaveJSONField("data.#", api.DefaultPerPage))
				Expect(resp).To(api.HaveJSONField("data.0.id", api.DefaultPerPage+1))
			})
		})
	})

	Context("When creating a user", func() {
		Describe("Given a name and job", func() {
			It("should echo the user back with 201 Created", func() {
				// Given: A name and a job
				// When: I create a user
				resp, err := client.Do(ctx, &api.Request{
					Method: http.MethodPost,
					Path:   client.Endpoints().CreateUser(),
					Body:   api.CreateUserBody,
				})
				Expect(err).NotTo(HaveOccurred())

				// Then: The user should be created
				Expect(resp).To(api.HaveStatus(http.StatusCreated))
				Expect(resp).To(api.HaveJSONField("name", "morpheus"))
				Expect(resp).To(api.HaveJSONField("job", "leader"))

				// And: An ID and creation time should be generated
				Expect(resp).To(api.HaveNonNullJSONField("id"))
				Expect(resp).To(api.HaveNonNullJSONField("createdAt"))
			})
		})
	})

	Context("When updating a user", func() {
		Describe("Given a replacement", func() {
			It("should echo the updated fields with 200 OK", func() {
				// Given: A first name and a job
				// When: I replace a user
				resp, err := client.Do(ctx, &api.Request{
					Method: http.MethodPut,
					Path:   client.Endpoints().UpdateUser(api.SingleUserID),
					Body:   api.UpdateUserBody,
				})
				Expect(err).NotTo(HaveOccurred())

				// Then: The updated fields should be echoed
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("job", "leader"))
				Expect(resp).To(api.HaveJSONField("first_name", "morpheus"))
			})
		})

		Describe("Given a full name", func() {
			It("should echo both names", func() {
				// Given: A first and last name
				payload := api.NewUserPayload().
					WithFirstName("Thomas").
					WithLastName("Anderson").
					Build()

				// When: I replace a user
				resp, err := client.UpdateUser(ctx, api.SingleUserID, payload)
				Expect(err).NotTo(HaveOccurred())

				// Then: Both names should be echoed
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("first_name", "Thomas"))
				Expect(resp).To(api.HaveJSONField("last_name", "Anderson"))
				Expect(resp).To(api.HaveNonNullJSONField("updatedAt"))
			})
		})

		Describe("Given a partial update", func() {
			It("should echo the updated fields and the update time", func() {
				// Given: A new job
				payload := api.NewUserPayload().
					WithName("morpheus").
					WithJob("zion resident").
					Build()

				// When: I patch a user
				resp, err := client.PatchUser(ctx, api.SingleUserID, payload)
				Expect(err).NotTo(HaveOccurred())

				// Then: The update should be echoed with a timestamp
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("name", "morpheus"))
				Expect(resp).To(api.HaveJSONField("job", "zion resident"))
				Expect(resp).To(api.HaveNonNullJSONField("updatedAt"))
			})
		})
	})

	Context("When deleting a user", func() {
		Describe("Given a user that exists", func() {
			It("should respond with 204 No Content", func() {
				// Given: A predefined user
				// When: I delete that user
				resp, err := client.DeleteUser(ctx, api.SingleUserID)
				Expect(err).NotTo(HaveOccurred())

				// Then: No content should be returned
				Expect(resp).To(api.HaveStatus(http.StatusNoContent))
				Expect(resp).To(api.HaveEmptyBody())
			})
		})
	})
})
