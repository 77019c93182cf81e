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

var _ = Describe("Discovery and Metadata", Label("resources"), func() {
	Context("When listing resources", func() {
		Describe("Given no parameters", func() {
			It("should return the first page", func() {
				resp, err := client.ListResources(ctx, api.ListOptions{})
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("page", 1))
				Expect(resp).To(api.HaveJSONField("total", api.TotalResources))
				Expect(resp).To(api.HaveJSONField("data.#", api.DefaultPerPage))
			})
		})
	})

	Context("When reading a single resource", func() {
		Describe("Given a resource that exists", func() {
			It("should return the resource", func() {
				// Given: A predefined resource
				// When: I request that resource
				resp, err := client.GetResource(ctx, api.SingleResourceID)
				Expect(err).NotTo(HaveOccurred())

				// Then: The resource should be returned
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.HaveJSONField("data.id", 2))
				Expect(resp).To(api.HaveJSONField("data.name", api.SingleResourceName))
				Expect(resp).To(api.HaveJSONField("data.year", api.SingleResourceYear))
				Expect(resp).To(api.HaveJSONField("data.color", api.SingleResourceColor))
				Expect(resp).To(api.HaveJSONField("data.pantone_value", api.SingleResourcePantone))
			})
		})
	})
})
