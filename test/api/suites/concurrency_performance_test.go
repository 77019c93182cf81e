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

var _ = Describe("Concurrency and Performance", Label("slow"), func() {
	Context("When the response is artificially delayed", func() {
		Describe("Given a delay of three units", func() {
			It("should still return the first page of users", func() {
				// Given: A three unit delay
				// When: I list users
				resp, err := client.ListUsers(ctx, api.ListOptions{Delay: 3})
				Expect(err).NotTo(HaveOccurred())

				// Then: The first page should be returned regardless of the delay
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("page", 1))
				Expect(resp).To(api.HaveJSONField("per_page", api.DefaultPerPage))
				Expect(resp).To(api.HaveJSONField("total", api.TotalUsers))
				Expect(resp).To(api.HaveJSONField("total_pages", api.TotalPages))
				Expect(resp).To(api.HaveNonNullJSONField("data"))

				// And: The delay should have been honoured
				GinkgoWriter.Printf("Delayed response took %s\n", resp.Duration)
				Expect(resp.Duration).To(BeNumerically(">=", 3*config.DelayUnit()))
			})
		})
	})
})
