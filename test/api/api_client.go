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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

// ErrUnexpectedStatus is raised when a request sets an expected status and
// the response doesn't match.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Request describes a single HTTP exchange.
type Request struct {
	Method string

	// Path is relative to the base URL and may include a query string.
	Path string

	// ContentType defaults to application/json when there is a body.
	ContentType string

	// Body is sent verbatim, empty means no body.
	Body string

	// ExpectedStatus, when non-zero, turns any other status into an error.
	ExpectedStatus int
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	validator *openapi.Validator
}

// NewAPIClientWithConfig returns a client for the configured endpoint.
func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	if err := validateBaseURL(config.BaseURL); err != nil {
		return nil, err
	}

	client := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateSchema {
		validator, err := openapi.NewValidator()
		if err != nil {
			return nil, err
		}

		client.validator = validator
	}

	return client, nil
}

// Endpoints exposes the path builders so callers can issue raw requests.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID, a random UUID is exactly the
// right size.
func generateTraceID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:])
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:8])
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do issues a request and reads the whole response.  A response is returned
// alongside any status or schema error so callers can inspect it.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) Do(ctx context.Context, request *Request) (*Response, error) {
	method, path := request.Method, request.Path

	var body io.Reader
	if request.Body != "" {
		body = strings.NewReader(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	contentType := request.ContentType
	if contentType == "" && body != nil {
		contentType = "application/json"
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.config.APIKey != "" {
		req.Header.Set("X-Api-Key", c.config.APIKey)
	}

	if c.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("[%s %s] sending body=%s traceparent=%s\n", method, path, request.Body, traceParent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)

	if err != nil {
		c.logError(method, path, time.Since(start), traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(start)

	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Duration:   duration,
		TraceID:    extractTraceID(traceParent),
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if request.ExpectedStatus > 0 && resp.StatusCode != request.ExpectedStatus {
		c.logUnexpectedStatus(method, path, request.ExpectedStatus, resp.StatusCode, string(respBody), traceParent)
		return response, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, request.ExpectedStatus, resp.StatusCode, truncate(respBody), response.TraceID)
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, method, path, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "validating response")
			return response, err
		}
	}

	return response, nil
}

// jsonRequest builds a request with a JSON encoded body.
func jsonRequest(method, path string, body any) (*Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return &Request{
		Method: method,
		Path:   path,
		Body:   string(data),
	}, nil
}

func (c *APIClient) get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

func (c *APIClient) send(ctx context.Context, method, path string, body any) (*Response, error) {
	request, err := jsonRequest(method, path, body)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, request)
}

// ListUsers reads a page of users.
func (c *APIClient) ListUsers(ctx context.Context, options ListOptions) (*Response, error) {
	return c.get(ctx, c.endpoints.ListUsers(options))
}

// GetUser reads a single user.
func (c *APIClient) GetUser(ctx context.Context, userID string) (*Response, error) {
	return c.get(ctx, c.endpoints.GetUser(userID))
}

// CreateUser creates a user.
func (c *APIClient) CreateUser(ctx context.Context, body *openapi.UserWrite) (*Response, error) {
	return c.send(ctx, http.MethodPost, c.endpoints.CreateUser(), body)
}

// UpdateUser replaces a user.
func (c *APIClient) UpdateUser(ctx context.Context, userID string, body *openapi.UserWrite) (*Response, error) {
	return c.send(ctx, http.MethodPut, c.endpoints.UpdateUser(userID), body)
}

// PatchUser partially updates a user.
func (c *APIClient) PatchUser(ctx context.Context, userID string, body *openapi.UserWrite) (*Response, error) {
	return c.send(ctx, http.MethodPatch, c.endpoints.UpdateUser(userID), body)
}

// DeleteUser deletes a user.
func (c *APIClient) DeleteUser(ctx context.Context, userID string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: c.endpoints.DeleteUser(userID)})
}

// ListResources reads a page of resources.
func (c *APIClient) ListResources(ctx context.Context, options ListOptions) (*Response, error) {
	return c.get(ctx, c.endpoints.ListResources(options))
}

// GetResource reads a single resource.
func (c *APIClient) GetResource(ctx context.Context, resourceID string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: c.endpoints.GetResource(resourceID), ContentType: "application/json"})
}

// Register registers an account.
func (c *APIClient) Register(ctx context.Context, body *openapi.Credentials) (*Response, error) {
	return c.send(ctx, http.MethodPost, c.endpoints.Register(), body)
}

// Login logs in to an account.
func (c *APIClient) Login(ctx context.Context, body *openapi.Credentials) (*Response, error) {
	return c.send(ctx, http.MethodPost, c.endpoints.Login(), body)
}
