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
	"github.com/unikorn-cloud/reqres/pkg/openapi"

	"k8s.io/utils/ptr"
)

// UserPayloadBuilder builds user create and update payloads for testing.
type UserPayloadBuilder struct {
	payload openapi.UserWrite
}

// NewUserPayload creates an empty user payload builder.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{}
}

// WithName sets the user's name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload.Name = ptr.To(name)

	return b
}

// WithFirstName sets the user's first name.
func (b *UserPayloadBuilder) WithFirstName(firstName string) *UserPayloadBuilder {
	b.payload.FirstName = ptr.To(firstName)

	return b
}

// WithLastName sets the user's last name.
func (b *UserPayloadBuilder) WithLastName(lastName string) *UserPayloadBuilder {
	b.payload.LastName = ptr.To(lastName)

	return b
}

// WithJob sets the user's job.
func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload.Job = ptr.To(job)

	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() *openapi.UserWrite {
	payload := b.payload

	return &payload
}

// CredentialsBuilder builds register and login payloads for testing.
type CredentialsBuilder struct {
	payload openapi.Credentials
}

// NewCredentials creates an empty credentials builder.
func NewCredentials() *CredentialsBuilder {
	return &CredentialsBuilder{}
}

// WithEmail sets the account email.
func (b *CredentialsBuilder) WithEmail(email string) *CredentialsBuilder {
	b.payload.Email = ptr.To(email)

	return b
}

// WithUsername sets the account username.
func (b *CredentialsBuilder) WithUsername(username string) *CredentialsBuilder {
	b.payload.Username = ptr.To(username)

	return b
}

// WithPassword sets the account password.
func (b *CredentialsBuilder) WithPassword(password string) *CredentialsBuilder {
	b.payload.Password = ptr.To(password)

	return b
}

// Build returns the completed credentials payload.
func (b *CredentialsBuilder) Build() *openapi.Credentials {
	payload := b.payload

	return &payload
}
