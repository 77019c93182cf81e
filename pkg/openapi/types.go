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
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Support is the donation banner attached to every read.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// User is a predefined account.
type User struct {
	ID        int                 `json:"id"`
	Email     openapi_types.Email `json:"email"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Avatar    string              `json:"avatar"`
}

// Resource is a predefined color swatch, served from /api/unknown.
type Resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// Pagination describes a page within a collection.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type UserResponse struct {
	Data    User    `json:"data"`
	Support Support `json:"support"`
}

type UserList struct {
	Pagination

	Data    []User  `json:"data"`
	Support Support `json:"support"`
}

type ResourceResponse struct {
	Data    Resource `json:"data"`
	Support Support  `json:"support"`
}

type ResourceList struct {
	Pagination

	Data    []Resource `json:"data"`
	Support Support    `json:"support"`
}

// UserWrite is the body of user create, replace and update requests.
// The service echoes whatever it's given, so every field is optional.
type UserWrite struct {
	Name      *string `json:"name,omitempty"`
	Job       *string `json:"job,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

type RegisterResponse struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Error is returned with 400 responses.
type Error struct {
	Error string `json:"error"`
}
