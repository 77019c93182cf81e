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

package server

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres/pkg/server/errors"
	"github.com/unikorn-cloud/reqres/pkg/server/handler"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options are server specific options e.g. listener address etc.
type Options struct {
	ListenAddress     string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	RequestTimeout    time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", time.Minute, "How long to wait for the API to respond to the client, must cover the longest delay.")
	f.DurationVar(&o.RequestTimeout, "server-request-timeout", 30*time.Second, "How long to wait of a request to be serviced.")
}

type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// ZapOptions configure logging.
	ZapOptions zap.Options

	// HandlerOptions sets options for the HTTP handler.
	HandlerOptions handler.Options
}

func (s *Server) AddFlags(goflags *flag.FlagSet, flags *pflag.FlagSet) {
	s.ZapOptions.BindFlags(goflags)

	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&s.ZapOptions)))
}

// Handler returns the fully wired router.  Metrics are registered with the
// given registry, which is also what /metrics exposes.
func (s *Server) Handler(ctx context.Context, clock common.Clock, registry *prometheus.Registry) (http.Handler, error) {
	handlerInterface, err := handler.New(&s.HandlerOptions, clock)
	if err != nil {
		return nil, err
	}

	metrics, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logging(log.FromContext(ctx)))
	router.Use(middleware.Recoverer)
	router.Use(metrics.middleware)

	if s.Options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(s.Options.RequestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errors.HandleError(w, r, errors.HTTPNotFound())
	})

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	handlerInterface.Register(router)

	return router, nil
}

func (s *Server) GetServer(ctx context.Context) (*http.Server, error) {
	router, err := s.Handler(ctx, common.RealClock{}, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           router,
	}

	return server, nil
}
