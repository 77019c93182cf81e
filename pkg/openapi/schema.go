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
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed reqres.yaml
var schemaData []byte

//nolint:gochecknoglobals
var (
	schemaOnce  sync.Once
	schemaCache *openapi3.T
	schemaErr   error
)

// Schema returns the parsed and validated OpenAPI document.  The result is
// cached, callers must treat it as read only.
func Schema() (*openapi3.T, error) {
	schemaOnce.Do(func() {
		schemaCache, schemaErr = loadSchema(context.Background())
	})

	return schemaCache, schemaErr
}

func loadSchema(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(schemaData)
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	return spec, nil
}
