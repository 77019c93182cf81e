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

//nolint:revive
package handler

import (
	"net/http"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/pkg/server/errors"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/accounts"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/common"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/resources"
	"github.com/unikorn-cloud/reqres/pkg/server/handler/users"
	"github.com/unikorn-cloud/reqres/pkg/server/util"
)

// Options control how the stub behaves.
type Options struct {
	// DelayUnit is how long one unit of the delay query parameter lasts.
	DelayUnit time.Duration

	// MaxDelay caps the delay query parameter.
	MaxDelay int
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&o.DelayUnit, "delay-unit", time.Second, "Duration of one unit of the delay query parameter")
	f.IntVar(&o.MaxDelay, "max-delay", 10, "Upper bound of the delay query parameter")
}

type Handler struct {
	// options allows behaviour to be defined on the CLI.
	options *Options

	users     *users.Client
	resources *resources.Client
	accounts  *accounts.Client
}

func New(options *Options, clock common.Clock) (*Handler, error) {
	h := &Handler{
		options:   options,
		users:     users.NewClient(clock),
		resources: resources.NewClient(),
		accounts:  accounts.NewClient(users.Fixtures()),
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) GetApiUsers(w http.ResponseWriter, r *http.Request) {
	result := h.users.List(r.Context(), common.PageParamsFromRequest(r))

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiUsers(w http.ResponseWriter, r *http.Request) {
	request := map[string]any{}

	if err := util.ReadJSONBody(r, &request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid request body").WithError(err))
		return
	}

	util.WriteJSONResponse(w, r, http.StatusCreated, h.users.Create(r.Context(), request))
}

func (h *Handler) GetApiUsersID(w http.ResponseWriter, r *http.Request, userID string) {
	result, err := h.users.Get(r.Context(), userID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PutApiUsersID(w http.ResponseWriter, r *http.Request, userID string) {
	h.updateUser(w, r, userID)
}

func (h *Handler) PatchApiUsersID(w http.ResponseWriter, r *http.Request, userID string) {
	h.updateUser(w, r, userID)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, userID string) {
	request := map[string]any{}

	if err := util.ReadJSONBody(r, &request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid request body").WithError(err))
		return
	}

	util.WriteJSONResponse(w, r, http.StatusOK, h.users.Update(r.Context(), userID, request))
}

func (h *Handler) DeleteApiUsersID(w http.ResponseWriter, r *http.Request, _ string) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetApiUnknown(w http.ResponseWriter, r *http.Request) {
	result := h.resources.List(r.Context(), common.PageParamsFromRequest(r))

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetApiUnknownID(w http.ResponseWriter, r *http.Request, resourceID string) {
	result, err := h.resources.Get(r.Context(), resourceID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiRegister(w http.ResponseWriter, r *http.Request) {
	request := &openapi.Credentials{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid request body").WithError(err))
		return
	}

	result, err := h.accounts.Register(r.Context(), request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiLogin(w http.ResponseWriter, r *http.Request) {
	request := &openapi.Credentials{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid request body").WithError(err))
		return
	}

	result, err := h.accounts.Login(r.Context(), request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
