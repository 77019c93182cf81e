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
	"fmt"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

type name struct {
	first string
	last  string
}

//nolint:gochecknoglobals
var names = []name{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// Fixtures returns the predefined users, ordered by ID.  Emails and avatars
// are derived from the name and ID respectively.
func Fixtures() []openapi.User {
	out := make([]openapi.User, len(names))

	for i, n := range names {
		id := i + 1

		out[i] = openapi.User{
			ID:        id,
			Email:     openapi_types.Email(fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(n.first), strings.ToLower(n.last))),
			FirstName: n.first,
			LastName:  n.last,
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		}
	}

	return out
}
