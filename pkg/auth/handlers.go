// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package auth exposes introspection endpoints for the calling identity.
// They sit behind authentication only, so any verified principal can see
// who the service thinks they are and which roles it resolved for them.
package auth

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/pkg/authentication"
)

type AuthnMiddlewareInterface interface {
	Authenticate() func(http.Handler) http.Handler
}

type RolesResponse struct {
	ProviderObjectID string               `json:"provider_object_id"`
	Roles            []authorization.Role `json:"roles"`
}

type API struct {
	authorizer authorization.AuthorizerInterface

	logger logging.LoggerInterface
}

func NewAPI(authorizer authorization.AuthorizerInterface, logger logging.LoggerInterface) *API {
	return &API{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router, authn AuthnMiddlewareInterface) {
	mux.Route("/api/v0/auth/me", func(r chi.Router) {
		r.Use(authn.Authenticate())
		r.Get("/", a.me)
		r.Get("/roles", a.myRoles)
	})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing principal")
		return
	}

	a.jsonResponse(w, http.StatusOK, principal)
}

func (a *API) myRoles(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing principal")
		return
	}

	roles, err := a.authorizer.GetRoles(r.Context(), principal)
	if err != nil {
		a.logger.Errorf("failed to resolve roles for %s: %v", principal.ProviderObjectID, err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to resolve roles")
		return
	}

	if roles == nil {
		roles = []authorization.Role{}
	}

	a.jsonResponse(w, http.StatusOK, RolesResponse{
		ProviderObjectID: principal.ProviderObjectID,
		Roles:            roles,
	})
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	a.jsonResponse(w, status, map[string]interface{}{
		"status":  status,
		"message": message,
	})
}
