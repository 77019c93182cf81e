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

package common

import (
	"net/http"
	"strconv"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

const (
	// DefaultPerPage is the page size when none is requested.
	DefaultPerPage = 6

	// SupportURL is where donations are accepted.
	SupportURL = "https://reqres.in/#support-heading"

	// SupportText is the donation banner text.
	SupportText = "To keep ReqRes free, contributions towards server costs are appreciated!"
)

// Support returns the donation banner attached to all reads.
func Support() openapi.Support {
	return openapi.Support{
		URL:  SupportURL,
		Text: SupportText,
	}
}

// PageParams selects a page of a collection.
type PageParams struct {
	Page    int
	PerPage int
}

// PageParamsFromRequest extracts paging parameters from the query string.
// Missing or malformed values fall back to the first page of the default
// size, as the real service does.
func PageParamsFromRequest(r *http.Request) PageParams {
	query := r.URL.Query()

	return PageParams{
		Page:    positiveInt(query.Get("page"), 1),
		PerPage: positiveInt(query.Get("per_page"), DefaultPerPage),
	}
}

func positiveInt(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return fallback
	}

	return i
}

// Paginate returns the requested page of items and its description.  Pages
// beyond the end are empty but not an error.
func Paginate[T any](items []T, params PageParams) ([]T, openapi.Pagination) {
	total := len(items)

	// Page sizes beyond the collection behave as one page holding everything.
	perPage := min(params.PerPage, max(total, 1))

	pagination := openapi.Pagination{
		Page:       params.Page,
		PerPage:    params.PerPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	if params.Page > pagination.TotalPages {
		return []T{}, pagination
	}

	start := (params.Page - 1) * perPage
	end := min(start+perPage, total)

	return items[start:end], pagination
}

// IDFromString parses a path identifier, reporting false for anything
// that isn't a positive integer.
func IDFromString(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
