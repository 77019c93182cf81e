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

package errors

import (
	"errors"
	"net/http"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Error is an HTTP error that knows how to render itself the way ReqRes
// does: 400s carry {"error": "..."}, 404s carry an empty object.
type Error struct {
	// status is the HTTP status code.
	status int

	// description is the human readable reason.  When empty the body
	// is an empty object.
	description string

	// err is the underlying cause, logged but never returned to the client.
	err error
}

func newError(status int, description string) *Error {
	return &Error{
		status:      status,
		description: description,
	}
}

// WithError attaches an underlying cause.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.description == "" {
		return http.StatusText(e.status)
	}

	return e.description
}

func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode returns the HTTP status code.
func (e *Error) StatusCode() int {
	return e.status
}

func (e *Error) write(w http.ResponseWriter, r *http.Request) {
	if e.description == "" {
		util.WriteJSONResponse(w, r, e.status, struct{}{})
		return
	}

	util.WriteJSONResponse(w, r, e.status, &openapi.Error{Error: e.description})
}

// HTTPBadRequest is raised when the client sends something unacceptable.
func HTTPBadRequest(description string) *Error {
	return newError(http.StatusBadRequest, description)
}

// HTTPNotFound is raised when a resource doesn't exist.
func HTTPNotFound() *Error {
	return newError(http.StatusNotFound, "")
}

// HTTPServerError is raised when something unexpected happens.
func HTTPServerError(description string) *Error {
	return newError(http.StatusInternalServerError, description)
}

// IsNotFound tells whether an error will render as a 404.
func IsNotFound(err error) bool {
	var httpErr *Error

	return errors.As(err, &httpErr) && httpErr.status == http.StatusNotFound
}

// HandleError is the top level error handler that should be called from all
// path handlers on error.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := log.FromContext(r.Context())

	var httpErr *Error

	if !errors.As(err, &httpErr) {
		httpErr = HTTPServerError("unhandled error").WithError(err)
	}

	if httpErr.status >= http.StatusInternalServerError {
		log.Error(err, "request failed", "status", httpErr.status)
	} else {
		log.V(1).Info("request rejected", "status", httpErr.status, "reason", httpErr.Error())
	}

	httpErr.write(w, r)
}
