// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package marker

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/storage"
	"github.com/dndhub/campaign-service/internal/types"
)

var validate = validator.New()

// Reads are open to every campaign member; only DMs and admins may change the map.
var (
	readPolicy  = authorization.Policy{{authorization.RolePlayer, authorization.RoleDM, authorization.RoleAdmin}}
	writePolicy = authorization.Policy{{authorization.RoleDM, authorization.RoleAdmin}}
)

type AuthzMiddlewareInterface interface {
	RequireRoles(policy authorization.Policy) func(http.Handler) http.Handler
}

type MarkerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	MapID       string  `json:"map_id" validate:"required"`
	IconType    string  `json:"icon_type"`
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
	mux.Route("/api/v0/markers", func(r chi.Router) {
		r.With(authz.RequireRoles(readPolicy)).Get("/", a.listMarkers)
		r.With(authz.RequireRoles(readPolicy)).Get("/{id}", a.getMarker)
		r.With(authz.RequireRoles(writePolicy)).Post("/", a.createMarker)
		r.With(authz.RequireRoles(writePolicy)).Put("/{id}", a.updateMarker)
		r.With(authz.RequireRoles(writePolicy)).Delete("/{id}", a.deleteMarker)
	})
}

func (a *API) listMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := a.service.ListMarkers(r.Context(), r.URL.Query().Get("map_id"))
	if err != nil {
		a.errorResponse(w, http.StatusInternalServerError, "failed to list markers")
		return
	}

	if markers == nil {
		markers = []*types.MapMarker{}
	}

	a.jsonResponse(w, http.StatusOK, markers)
}

func (a *API) getMarker(w http.ResponseWriter, r *http.Request) {
	m, err := a.service.GetMarker(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "marker not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to get marker")
		return
	}

	a.jsonResponse(w, http.StatusOK, m)
}

func (a *API) createMarker(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeMarkerRequest(w, r)
	if !ok {
		return
	}

	m, err := a.service.CreateMarker(r.Context(), &types.MapMarker{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		MapID:       req.MapID,
		IconType:    req.IconType,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			a.errorResponse(w, http.StatusConflict, "marker already exists")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to create marker")
		return
	}

	a.jsonResponse(w, http.StatusCreated, m)
}

func (a *API) updateMarker(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeMarkerRequest(w, r)
	if !ok {
		return
	}

	m, err := a.service.UpdateMarker(r.Context(), &types.MapMarker{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		MapID:       req.MapID,
		IconType:    req.IconType,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "marker not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to update marker")
		return
	}

	a.jsonResponse(w, http.StatusOK, m)
}

func (a *API) deleteMarker(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteMarker(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "marker not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to delete marker")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeMarkerRequest(w http.ResponseWriter, r *http.Request) (*MarkerRequest, bool) {
	var req MarkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := validate.Struct(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &req, true
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
