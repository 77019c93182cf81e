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
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// ListOptions select a page of a collection and an artificial delay.
// Zero values are omitted from the query.
type ListOptions struct {
	Page    int
	PerPage int
	Delay   int
}

func (o ListOptions) encode() string {
	query := url.Values{}

	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}

	if o.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(o.PerPage))
	}

	if o.Delay > 0 {
		query.Set("delay", strconv.Itoa(o.Delay))
	}

	if len(query) == 0 {
		return ""
	}

	return "?" + query.Encode()
}

// User endpoints.
func (e *Endpoints) ListUsers(options ListOptions) string {
	return "/api/users" + options.encode()
}

func (e *Endpoints) GetUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) CreateUser() string {
	return "/api/users"
}

func (e *Endpoints) UpdateUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) DeleteUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

// Resource endpoints.
func (e *Endpoints) ListResources(options ListOptions) string {
	return "/api/unknown" + options.encode()
}

func (e *Endpoints) GetResource(resourceID string) string {
	return fmt.Sprintf("/api/unknown/%s", url.PathEscape(resourceID))
}

// Account endpoints.
func (e *Endpoints) Register() string {
	return "/api/register"
}

func (e *Endpoints) Login() string {
	return "/api/login"
}
