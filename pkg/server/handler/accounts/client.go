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

package accounts

import (
	"context"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/pkg/server/errors"
)

const (
	// Token is issued to every successful registration and login.
	Token = "QpwL5tke4Pnpja7X4"

	reasonMissingIdentity = "Missing email or username"
	reasonMissingPassword = "Missing password"
	reasonUndefinedUser   = "Note: Only defined users succeed registration"
	reasonUserNotFound    = "user not found"
)

// Client wraps up registration and login.  Only predefined users may
// register or log in, and any password is accepted.
type Client struct {
	// userIDs maps emails of the predefined users to their IDs.
	userIDs map[string]int
}

// NewClient returns a client that accepts the given users.
func NewClient(users []openapi.User) *Client {
	userIDs := make(map[string]int, len(users))

	for _, user := range users {
		userIDs[string(user.Email)] = user.ID
	}

	return &Client{
		userIDs: userIDs,
	}
}

func identity(request *openapi.Credentials) string {
	if request.Email != nil && *request.Email != "" {
		return *request.Email
	}

	if request.Username != nil {
		return *request.Username
	}

	return ""
}

func validate(request *openapi.Credentials) (string, error) {
	id := identity(request)
	if id == "" {
		return "", errors.HTTPBadRequest(reasonMissingIdentity)
	}

	if request.Password == nil || *request.Password == "" {
		return "", errors.HTTPBadRequest(reasonMissingPassword)
	}

	return id, nil
}

// Register returns the user's ID and a session token.
func (c *Client) Register(_ context.Context, request *openapi.Credentials) (*openapi.RegisterResponse, error) {
	id, err := validate(request)
	if err != nil {
		return nil, err
	}

	userID, ok := c.userIDs[id]
	if !ok {
		return nil, errors.HTTPBadRequest(reasonUndefinedUser)
	}

	return &openapi.RegisterResponse{
		ID:    userID,
		Token: Token,
	}, nil
}

// Login returns a session token.
func (c *Client) Login(_ context.Context, request *openapi.Credentials) (*openapi.LoginResponse, error) {
	id, err := validate(request)
	if err != nil {
		return nil, err
	}

	if _, ok := c.userIDs[id]; !ok {
		return nil, errors.HTTPBadRequest(reasonUserNotFound)
	}

	return &openapi.LoginResponse{
		Token: Token,
	}, nil
}
