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

package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

var (
	// ErrUnknownRoute is raised when a request doesn't map to any operation
	// in the schema.
	ErrUnknownRoute = errors.New("route not described by schema")

	// ErrSchemaViolation is raised when a response doesn't conform to the
	// schema for its operation and status code.
	ErrSchemaViolation = errors.New("response violates schema")
)

// Validator checks HTTP exchanges against the ReqRes schema.
type Validator struct {
	router routers.Router
}

// NewValidator returns a validator for the embedded schema.
func NewValidator() (*Validator, error) {
	spec, err := Schema()
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("building schema router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// ValidateResponse checks the response to method and path, where path is
// relative to the API root and may carry a query string.  Status codes the
// schema doesn't describe are not treated as violations, status checks are
// up to the caller.
func (v *Validator) ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnknownRoute, method, path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(body)),
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s status %d: %w", ErrSchemaViolation, method, path, status, err)
	}

	return nil
}
