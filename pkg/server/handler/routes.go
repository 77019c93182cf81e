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

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Delay returns middleware that holds any request carrying a delay query
// parameter for that many delay units, clamped to the configured maximum.
// A request whose context ends first is answered immediately.
func (h *Handler) Delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delay, err := strconv.Atoi(r.URL.Query().Get("delay"))
		if err != nil || delay <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		delay = min(delay, h.options.MaxDelay)

		duration := time.Duration(delay) * h.options.DelayUnit

		log.FromContext(r.Context()).V(1).Info("delaying response", "delay", duration)

		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-r.Context().Done():
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Register binds all handlers to a router.
func (h *Handler) Register(r chi.Router) {
	id := func(handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			handler(w, r, chi.URLParam(r, "id"))
		}
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Delay)

		r.Get("/users", h.GetApiUsers)
		r.Post("/users", h.PostApiUsers)
		r.Get("/users/{id}", id(h.GetApiUsersID))
		r.Put("/users/{id}", id(h.PutApiUsersID))
		r.Patch("/users/{id}", id(h.PatchApiUsersID))
		r.Delete("/users/{id}", id(h.DeleteApiUsersID))
		r.Get("/unknown", h.GetApiUnknown)
		r.Get("/unknown/{id}", id(h.GetApiUnknownID))
		r.Post("/register", h.PostApiRegister)
		r.Post("/login", h.PostApiLogin)
	})
}
