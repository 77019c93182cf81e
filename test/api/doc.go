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

// Package api provides integration test utilities for the ReqRes API.
//
// # Separate Client Implementation
//
// This package intentionally maintains a hand written HTTP client (APIClient)
// rather than a generated one.  The suite is a black box check of the
// service's contract, and an independent client serves as triangulation:
// any change to the service's behaviour must show up as a failing
// assertion here rather than being silently absorbed by regenerated code.
//
// The client includes features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Optional validation of every response against the OpenAPI schema
//   - Direct access to HTTP status codes and response bodies
//
// # Running Offline
//
// Setting USE_STUB=true starts the local ReqRes stub in process and points
// the suite at it, so the suites run without network access.  The stub
// replays the same fixed data as the live service.
package api
