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
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public ReqRes service.
const DefaultBaseURL = "https://reqres.in"

// ErrInvalidBaseURL is raised when the configured base endpoint is unusable.
var ErrInvalidBaseURL = errors.New("invalid base URL")

type TestConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	UseStub        bool
	StubDelayUnit  time.Duration
	ValidateSchema bool
	DebugLogging   bool
	LogRequests    bool
	LogResponses   bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if the base URL cannot be used.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:        getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		APIKey:         os.Getenv("API_KEY"),
		RequestTimeout: getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		UseStub:        getBoolWithDefault("USE_STUB", false),
		StubDelayUnit:  getDurationWithDefault("STUB_DELAY_UNIT", time.Second),
		ValidateSchema: getBoolWithDefault("VALIDATE_SCHEMA", true),
		DebugLogging:   getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateBaseURL(config.BaseURL); err != nil {
		return nil, err
	}

	return config, nil
}

// WithBaseURL returns a copy of the configuration aimed at another endpoint.
// The receiver is left untouched.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	out := *c
	out.BaseURL = baseURL

	return &out
}

// DelayUnit is how long one unit of the delay query parameter lasts against
// the configured endpoint.
func (c *TestConfig) DelayUnit() time.Duration {
	if c.UseStub {
		return c.StubDelayUnit
	}

	return time.Second
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",       // From test/api directory
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/reqres directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateBaseURL checks the base endpoint is an absolute HTTP(S) URL.
func validateBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidBaseURL, baseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidBaseURL, baseURL)
	}

	if u.Host == "" {
		return fmt.Errorf("%w %q: host is required", ErrInvalidBaseURL, baseURL)
	}

	return nil
}
