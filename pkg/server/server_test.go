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

package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reqres/pkg/server"
	"github.com/unikorn-cloud/reqres/pkg/server/handler"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := &server.Server{}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)

	require.NoError(t, flags.Parse([]string{"--delay-unit=1ms"}))

	h, err := s.Handler(context.Background(), common.RealClock{}, prometheus.NewRegistry())
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestFlagDefaults(t *testing.T) {
	t.Parallel()

	s := &server.Server{}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)

	require.NoError(t, flags.Parse(nil))

	assert.Equal(t, ":6080", s.Options.ListenAddress)
	assert.Equal(t, 30*time.Second, s.Options.RequestTimeout)
	assert.Equal(t, time.Second, s.HandlerOptions.DelayUnit)
	assert.Equal(t, 10, s.HandlerOptions.MaxDelay)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/colors")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	for range 2 {
		resp, _ := get(t, ts.URL+"/api/users/2?delay=1")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := get(t, ts.URL+"/api/users/23")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, `reqres_stub_requests_total{code="200",method="GET",route="/api/users/{id}"} 2`)
	assert.Contains(t, body, `reqres_stub_requests_total{code="404",method="GET",route="/api/users/{id}"} 1`)
	assert.Contains(t, body, `reqres_stub_request_duration_seconds_count{route="/api/users/{id}"} 3`)
}

func TestGetServer(t *testing.T) {
	t.Parallel()

	s := &server.Server{
		Options: server.Options{
			ListenAddress: "127.0.0.1:0",
			WriteTimeout:  time.Minute,
		},
	}

	srv, err := s.GetServer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.Equal(t, time.Minute, srv.WriteTimeout)
	assert.NotNil(t, srv.Handler)
}

func TestServeDrainsDelayedRequests(t *testing.T) {
	t.Parallel()

	const delayUnit = 100 * time.Millisecond

	s := &server.Server{
		HandlerOptions: handler.Options{
			DelayUnit: delayUnit,
			MaxDelay:  10,
		},
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)

	go func() {
		served <- s.Serve(ctx, listener)
	}()

	statuses := make(chan int, 1)

	start := time.Now()

	go func() {
		resp, err := http.Get("http://" + listener.Addr().String() + "/api/users?delay=3") //nolint:noctx
		if err != nil {
			statuses <- 0
			return
		}

		resp.Body.Close()

		statuses <- resp.StatusCode
	}()

	// Stop while the request is held by the delay.
	time.Sleep(delayUnit)
	cancel()

	require.NoError(t, <-served)
	assert.GreaterOrEqual(t, time.Since(start), 3*delayUnit)
	assert.Equal(t, http.StatusOK, <-statuses)
}

func TestServeStopsWhenIdle(t *testing.T) {
	t.Parallel()

	s := &server.Server{}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Serve(ctx, listener))
}
