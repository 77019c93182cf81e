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
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/tidwall/gjson"
)

// ErrNotAResponse is raised when a matcher is applied to something other
// than a *Response.
var ErrNotAResponse = errors.New("matcher expects a *api.Response")

func asResponse(actual any) (*Response, error) {
	response, ok := actual.(*Response)
	if !ok || response == nil {
		return nil, fmt.Errorf("%w, got %s", ErrNotAResponse, format.Object(actual, 1))
	}

	return response, nil
}

type statusMatcher struct {
	expected int
	actual   *Response
}

// HaveStatus succeeds when a response has the given status code.
func HaveStatus(expected int) types.GomegaMatcher {
	return &statusMatcher{expected: expected}
}

func (m *statusMatcher) Match(actual any) (bool, error) {
	response, err := asResponse(actual)
	if err != nil {
		return false, err
	}

	m.actual = response

	return response.StatusCode == m.expected, nil
}

func (m *statusMatcher) FailureMessage(_ any) string {
	return fmt.Sprintf("Expected status code %d, got %d\n\t%s", m.expected, m.actual.StatusCode, m.actual)
}

func (m *statusMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected status code not to be %d\n\t%s", m.expected, m.actual)
}

type fieldMatcher struct {
	path     string
	expected any
	actual   gjson.Result
	response *Response
}

// HaveJSONField succeeds when the value at path equals expected exactly,
// including its JSON type: 2 does not match "2".  Paths use gjson syntax.
func HaveJSONField(path string, expected any) types.GomegaMatcher {
	return &fieldMatcher{path: path, expected: expected}
}

func (m *fieldMatcher) Match(actual any) (bool, error) {
	response, err := asResponse(actual)
	if err != nil {
		return false, err
	}

	m.response = response

	body, err := response.JSON()
	if err != nil {
		return false, fmt.Errorf("reading field %s: %w", m.path, err)
	}

	m.actual = body.Get(m.path)
	if !m.actual.Exists() {
		return false, nil
	}

	want, err := normalize(m.expected)
	if err != nil {
		return false, err
	}

	return reflect.DeepEqual(m.actual.Value(), want), nil
}

// normalize puts an expected value into the same representation gjson
// produces for the actual one.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling expected value: %w", err)
	}

	return gjson.ParseBytes(data).Value(), nil
}

func (m *fieldMatcher) FailureMessage(_ any) string {
	if !m.actual.Exists() {
		return fmt.Sprintf("Expected JSON field %q to equal\n%s\nbut it is missing\n\t%s", m.path, format.Object(m.expected, 1), m.response)
	}

	return fmt.Sprintf("Expected JSON field %q to equal\n%s\nbut it was\n%s\n\t%s", m.path, format.Object(m.expected, 1), format.Object(m.actual.Value(), 1), m.response)
}

func (m *fieldMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected JSON field %q not to equal\n%s\n\t%s", m.path, format.Object(m.expected, 1), m.response)
}

type presenceMatcher struct {
	path     string
	response *Response
}

// HaveNonNullJSONField succeeds when path resolves to anything but null.
func HaveNonNullJSONField(path string) types.GomegaMatcher {
	return &presenceMatcher{path: path}
}

func (m *presenceMatcher) Match(actual any) (bool, error) {
	response, err := asResponse(actual)
	if err != nil {
		return false, err
	}

	m.response = response

	body, err := response.JSON()
	if err != nil {
		return false, fmt.Errorf("reading field %s: %w", m.path, err)
	}

	result := body.Get(m.path)

	return result.Exists() && result.Type != gjson.Null, nil
}

func (m *presenceMatcher) FailureMessage(_ any) string {
	return fmt.Sprintf("Expected JSON field %q to be present and not null\n\t%s", m.path, m.response)
}

func (m *presenceMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected JSON field %q to be missing or null\n\t%s", m.path, m.response)
}

type emptyBodyMatcher struct {
	response *Response
}

// HaveEmptyBody succeeds when a response has no body at all.
func HaveEmptyBody() types.GomegaMatcher {
	return &emptyBodyMatcher{}
}

func (m *emptyBodyMatcher) Match(actual any) (bool, error) {
	response, err := asResponse(actual)
	if err != nil {
		return false, err
	}

	m.response = response

	return len(response.Body) == 0, nil
}

func (m *emptyBodyMatcher) FailureMessage(_ any) string {
	return fmt.Sprintf("Expected an empty body\n\t%s", m.response)
}

func (m *emptyBodyMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected a non-empty body\n\t%s", m.response)
}
