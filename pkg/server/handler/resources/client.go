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

package resources

import (
	"context"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/pkg/server/errors"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"
)

// Fixtures returns the predefined resources, Pantone colors of the year,
// ordered by ID.
func Fixtures() []openapi.Resource {
	return []openapi.Resource{
		{ID: 1, Name: "cerulean", Year: 2000, Color: "#98B2D1", PantoneValue: "15-4020"},
		{ID: 2, Name: "fuchsia rose", Year: 2001, Color: "#C74375", PantoneValue: "17-2031"},
		{ID: 3, Name: "true red", Year: 2002, Color: "#BF1932", PantoneValue: "19-1664"},
		{ID: 4, Name: "aqua sky", Year: 2003, Color: "#7BC4C4", PantoneValue: "14-4811"},
		{ID: 5, Name: "tigerlily", Year: 2004, Color: "#E2583E", PantoneValue: "17-1456"},
		{ID: 6, Name: "blue turquoise", Year: 2005, Color: "#53B0AE", PantoneValue: "15-5217"},
		{ID: 7, Name: "sand dollar", Year: 2006, Color: "#DECDBE", PantoneValue: "13-1106"},
		{ID: 8, Name: "chili pepper", Year: 2007, Color: "#9B1B30", PantoneValue: "19-1557"},
		{ID: 9, Name: "blue iris", Year: 2008, Color: "#5A5B9F", PantoneValue: "18-3943"},
		{ID: 10, Name: "mimosa", Year: 2009, Color: "#F0C05A", PantoneValue: "14-0848"},
		{ID: 11, Name: "turquoise", Year: 2010, Color: "#45B5AA", PantoneValue: "15-5519"},
		{ID: 12, Name: "honeysuckle", Year: 2011, Color: "#D94F70", PantoneValue: "18-2120"},
	}
}

// Client wraps up resource related handling.
type Client struct {
	resources []openapi.Resource
}

// NewClient returns a new client.
func NewClient() *Client {
	return &Client{
		resources: Fixtures(),
	}
}

// List returns a page of resources.
func (c *Client) List(_ context.Context, params common.PageParams) *openapi.ResourceList {
	data, pagination := common.Paginate(c.resources, params)

	return &openapi.ResourceList{
		Pagination: pagination,
		Data:       data,
		Support:    common.Support(),
	}
}

// Get returns a single resource.
func (c *Client) Get(_ context.Context, resourceID string) (*openapi.ResourceResponse, error) {
	id, ok := common.IDFromString(resourceID)
	if !ok || id > len(c.resources) {
		return nil, errors.HTTPNotFound()
	}

	return &openapi.ResourceResponse{
		Data:    c.resources[id-1],
		Support: common.Support(),
	}, nil
}
