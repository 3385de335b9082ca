// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package character

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

// Players manage their own sheets, so writes are open to the player role as
// well. Deleting a character is reserved for DMs and admins.
var (
	memberPolicy = authorization.Policy{{authorization.RolePlayer, authorization.RoleDM, authorization.RoleAdmin}}
	deletePolicy = authorization.Policy{{authorization.RoleDM, authorization.RoleAdmin}}
)

type AuthzMiddlewareInterface interface {
	RequireRoles(policy authorization.Policy) func(http.Handler) http.Handler
}

type CharacterRequest struct {
	Name  string          `json:"name" validate:"required"`
	Race  string          `json:"race"`
	Class string          `json:"class"`
	Level int             `json:"level" validate:"gte=0,lte=20"`
	Stats json.RawMessage `json:"stats"`
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
	mux.Route("/api/v0/characters", func(r chi.Router) {
		r.With(authz.RequireRoles(memberPolicy)).Get("/", a.listCharacters)
		r.With(authz.RequireRoles(memberPolicy)).Get("/{id}", a.getCharacter)
		r.With(authz.RequireRoles(memberPolicy)).Post("/", a.createCharacter)
		r.With(authz.RequireRoles(memberPolicy)).Put("/{id}", a.updateCharacter)
		r.With(authz.RequireRoles(deletePolicy)).Delete("/{id}", a.deleteCharacter)
	})
}

func (a *API) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := a.service.ListCharacters(r.Context())
	if err != nil {
		a.errorResponse(w, http.StatusInternalServerError, "failed to list characters")
		return
	}

	if characters == nil {
		characters = []*types.Character{}
	}

	a.jsonResponse(w, http.StatusOK, characters)
}

func (a *API) getCharacter(w http.ResponseWriter, r *http.Request) {
	c, err := a.service.GetCharacter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "character not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to get character")
		return
	}

	a.jsonResponse(w, http.StatusOK, c)
}

func (a *API) createCharacter(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeCharacterRequest(w, r)
	if !ok {
		return
	}

	c, err := a.service.CreateCharacter(r.Context(), &types.Character{
		Name:  req.Name,
		Race:  req.Race,
		Class: req.Class,
		Level: req.Level,
		Stats: req.Stats,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			a.errorResponse(w, http.StatusConflict, "character already exists")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to create character")
		return
	}

	a.jsonResponse(w, http.StatusCreated, c)
}

func (a *API) updateCharacter(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeCharacterRequest(w, r)
	if !ok {
		return
	}

	c, err := a.service.UpdateCharacter(r.Context(), &types.Character{
		ID:    chi.URLParam(r, "id"),
		Name:  req.Name,
		Race:  req.Race,
		Class: req.Class,
		Level: req.Level,
		Stats: req.Stats,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "character not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to update character")
		return
	}

	a.jsonResponse(w, http.StatusOK, c)
}

func (a *API) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteCharacter(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "character not found")
			return
		}
		a.errorResponse(w, http.StatusInternalServerError, "failed to delete character")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeCharacterRequest(w http.ResponseWriter, r *http.Request) (*CharacterRequest, bool) {
	var req CharacterRequest
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
