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

package users

import (
	"context"
	"maps"
	"strconv"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/pkg/server/errors"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"

	"k8s.io/apimachinery/pkg/util/rand"
)

const (
	// minCreatedID and maxCreatedID bound the IDs handed out to created
	// users.  They are never persisted so collisions don't matter.
	minCreatedID = 100
	maxCreatedID = 1000
)

// Client wraps up user related handling.  Nothing is persisted: writes
// echo the request back with generated metadata.
type Client struct {
	// clock generates timestamps.
	clock common.Clock

	// users are the predefined users.
	users []openapi.User
}

// NewClient returns a new client.
func NewClient(clock common.Clock) *Client {
	return &Client{
		clock: clock,
		users: Fixtures(),
	}
}

// List returns a page of users.
func (c *Client) List(_ context.Context, params common.PageParams) *openapi.UserList {
	data, pagination := common.Paginate(c.users, params)

	return &openapi.UserList{
		Pagination: pagination,
		Data:       data,
		Support:    common.Support(),
	}
}

// Get returns a single user.
func (c *Client) Get(_ context.Context, userID string) (*openapi.UserResponse, error) {
	id, ok := common.IDFromString(userID)
	if !ok || id > len(c.users) {
		return nil, errors.HTTPNotFound()
	}

	return &openapi.UserResponse{
		Data:    c.users[id-1],
		Support: common.Support(),
	}, nil
}

// Create echoes the request with an ID and creation time.
func (c *Client) Create(_ context.Context, request map[string]any) map[string]any {
	result := make(map[string]any, len(request)+2)
	maps.Copy(result, request)

	result["id"] = strconv.Itoa(rand.IntnRange(minCreatedID, maxCreatedID))
	result["createdAt"] = common.Timestamp(c.clock.Now())

	return result
}

// Update echoes the request with an update time.  Any user ID is accepted,
// replace and partial update behave identically.
func (c *Client) Update(_ context.Context, _ string, request map[string]any) map[string]any {
	result := make(map[string]any, len(request)+1)
	maps.Copy(result, request)

	result["updatedAt"] = common.Timestamp(c.clock.Now())

	return result
}
