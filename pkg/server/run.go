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
	"errors"
	"net"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// shutdownGrace is added to the write timeout when draining, so a request
// that is allowed to run for the full write timeout can still finish.
const shutdownGrace = time.Second

// Run listens on the configured address and serves until the context is
// cancelled.  See Serve.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Options.ListenAddress)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listener)
}

// Serve serves on the listener until the context is cancelled, then stops
// accepting connections and waits for in flight requests, including delayed
// ones, before returning.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer, err := s.GetServer(ctx)
	if err != nil {
		listener.Close()
		return err
	}

	shutdown := make(chan error, 1)

	go func() {
		<-ctx.Done()

		log.FromContext(ctx).Info("draining in flight requests")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Options.WriteTimeout+shutdownGrace)
		defer cancel()

		shutdown <- httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as shutdown starts, draining is only complete
	// once Shutdown itself returns.
	return <-shutdown
}
