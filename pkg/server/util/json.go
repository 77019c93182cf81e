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

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// ErrRequest is raised when a request body cannot be read.
var ErrRequest = errors.New("request error")

// WriteJSONResponse is a generic wrapper for returning a JSON payload.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	log := log.FromContext(r.Context())

	body, err := json.Marshal(response)
	if err != nil {
		log.Error(err, "failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		log.Error(err, "failed to write response")
	}
}

// ReadJSONBody reads a request body into a generic object.  An empty body
// is accepted and leaves the object untouched.
func ReadJSONBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: unable to read request body: %w", ErrRequest, err)
	}

	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: unable to decode request body: %w", ErrRequest, err)
	}

	return nil
}
