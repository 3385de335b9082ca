// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package homebrew

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/blob"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/types"
)

var validate = validator.New()

var (
	readPolicy  = authorization.Policy{{authorization.RolePlayer, authorization.RoleDM, authorization.RoleAdmin}}
	writePolicy = authorization.Policy{{authorization.RoleDM, authorization.RoleAdmin}}
)

type AuthzMiddlewareInterface interface {
	RequireRoles(policy authorization.Policy) func(http.Handler) http.Handler
}

type DocumentRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router, authz AuthzMiddlewareInterface) {
	mux.Route("/api/v0/homebrew", func(r chi.Router) {
		r.With(authz.RequireRoles(readPolicy)).Get("/", a.listDocuments)
		r.With(authz.RequireRoles(readPolicy)).Get("/{id}", a.getDocument)
		r.With(authz.RequireRoles(writePolicy)).Put("/{id}", a.putDocument)
		r.With(authz.RequireRoles(writePolicy)).Delete("/{id}", a.deleteDocument)
	})
}

func (a *API) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := a.service.ListDocuments(r.Context())
	if err != nil {
		a.errorResponse(w, http.StatusInternalServerError, "failed to list homebrew documents")
		return
	}

	a.jsonResponse(w, http.StatusOK, docs)
}

func (a *API) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := a.service.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "homebrew document not found")
			return
		}
		if errors.Is(err, blob.ErrInvalidPath) {
			a.errorResponse(w, http.StatusBadRequest, "invalid document id")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to get homebrew document")
		return
	}

	a.jsonResponse(w, http.StatusOK, doc)
}

func (a *API) putDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := &types.HomebrewDocument{
		ID:      chi.URLParam(r, "id"),
		Title:   req.Title,
		Content: req.Content,
	}

	if err := a.service.PutDocument(r.Context(), doc); err != nil {
		if errors.Is(err, blob.ErrInvalidPath) {
			a.errorResponse(w, http.StatusBadRequest, "invalid document id")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to store homebrew document")
		return
	}

	a.jsonResponse(w, http.StatusOK, doc)
}

func (a *API) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "homebrew document not found")
			return
		}
		if errors.Is(err, blob.ErrInvalidPath) {
			a.errorResponse(w, http.StatusBadRequest, "invalid document id")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to delete homebrew document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
