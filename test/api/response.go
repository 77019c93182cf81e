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

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedBody is raised when a body is expected to be JSON but isn't.
	ErrMalformedBody = errors.New("malformed response body")

	// ErrFieldNotFound is raised when a field path doesn't resolve.
	ErrFieldNotFound = errors.New("field not found")
)

// Response is a fully read HTTP response.
type Response struct {
	// Method and Path identify the request, Path is relative to the base URL.
	Method string
	Path   string

	StatusCode int
	Header     http.Header
	Body       []byte

	// Duration is the round trip time including reading the body.
	Duration time.Duration

	// TraceID correlates the request with service logs.
	TraceID string
}

// JSON parses the body.
func (r *Response) JSON() (gjson.Result, error) {
	if !gjson.ValidBytes(r.Body) {
		return gjson.Result{}, fmt.Errorf("%w: %s %s: %q", ErrMalformedBody, r.Method, r.Path, truncate(r.Body))
	}

	return gjson.ParseBytes(r.Body), nil
}

// Field returns the value at a dotted path e.g. "data.first_name", using
// gjson path syntax so "data.#" is an array length and "data.0.id" indexes.
func (r *Response) Field(path string) (gjson.Result, error) {
	body, err := r.JSON()
	if err != nil {
		return gjson.Result{}, err
	}

	result := body.Get(path)
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: %s in %s %s", ErrFieldNotFound, path, r.Method, r.Path)
	}

	return result, nil
}

// Decode unmarshals the body into a typed value.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedBody, r.Method, r.Path, err)
	}

	return nil
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d %s (trace ID: %s)", r.Method, r.Path, r.StatusCode, truncate(r.Body), r.TraceID)
}

const maxBodyPreview = 512

func truncate(body []byte) string {
	if len(body) <= maxBodyPreview {
		return string(body)
	}

	return string(body[:maxBodyPreview]) + "..."
}
