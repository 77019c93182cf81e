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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unikorn-cloud/reqres/pkg/server"
	"github.com/unikorn-cloud/reqres/pkg/server/handler"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Well known data served by the service.
const (
	SingleUserID        = "2"
	SingleUserEmail     = "janet.weaver@reqres.in"
	SingleUserFirstName = "Janet"
	SingleUserLastName  = "Weaver"
	SingleUserAvatar    = "https://reqres.in/img/faces/2-image.jpg"

	MissingUserID     = "23"
	MissingResourceID = "23"

	SingleResourceID      = "2"
	SingleResourceName    = "fuchsia rose"
	SingleResourceYear    = 2001
	SingleResourceColor   = "#C74375"
	SingleResourcePantone = "17-2031"

	SupportURL  = "https://reqres.in/#support-heading"
	SupportText = "To keep ReqRes free, contributions towards server costs are appreciated!"

	RegisteredEmail        = "eve.holt@reqres.in"
	RegisterPassword       = "pistol"
	LoginPassword          = "cityslicka"
	RegisteredUserID       = 4
	RegisteredToken        = "QpwL5tke4Pnpja7X4"
	FailedRegisterEmail    = "sydney@fife"
	FailedLoginEmail       = "peter@klaven"
	MissingPasswordMessage = "Missing password"

	DefaultPerPage = 6
	TotalUsers     = 12
	TotalResources = 12
	TotalPages     = 2

	// StubMaxDelay mirrors the upper bound the live service applies.
	StubMaxDelay = 10
)

// Canonical request bodies, sent verbatim.
const (
	CreateUserBody = `{"name":"morpheus","job":"leader"}`
	UpdateUserBody = `{"first_name":"morpheus","job":"leader"}`
	RegisterBody   = `{"email":"eve.holt@reqres.in","password":"pistol"}`
	LoginBody      = `{"email":"eve.holt@reqres.in","password":"cityslicka"}`
)

// NewStubHandler returns the local ReqRes stub as an http.Handler.  Requests
// are logged to logger.
func NewStubHandler(config *TestConfig, logger logr.Logger) (http.Handler, error) {
	s := &server.Server{
		HandlerOptions: handler.Options{
			DelayUnit: config.StubDelayUnit,
			MaxDelay:  StubMaxDelay,
		},
	}

	return s.Handler(log.IntoContext(context.Background(), logger), common.RealClock{}, prometheus.NewRegistry())
}

// StartStub starts the local stub for the lifetime of the current node and
// returns a copy of the configuration aimed at it.
func StartStub(config *TestConfig) *TestConfig {
	stub, err := NewStubHandler(config, GinkgoLogr)
	Expect(err).NotTo(HaveOccurred())

	srv := httptest.NewServer(stub)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Stopping ReqRes stub at %s\n", srv.URL)
		srv.Close()
	})

	GinkgoWriter.Printf("Started ReqRes stub at %s\n", srv.URL)

	return config.WithBaseURL(srv.URL)
}
