// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/pkg/authentication"
)

type fakeAuthenticator struct {
	principal *authentication.Principal
}

func (f fakeAuthenticator) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if f.principal == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			ctx := authentication.WithPrincipal(r.Context(), f.principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type stubAuthorizer struct {
	roles []authorization.Role
	err   error
}

func (s stubAuthorizer) RequireCNFRoles(ctx context.Context, principal *authentication.Principal, policy authorization.Policy) (*authentication.Principal, error) {
	return principal, nil
}

func (s stubAuthorizer) GetRoles(ctx context.Context, principal *authentication.Principal) ([]authorization.Role, error) {
	return s.roles, s.err
}

func newTestRouter(authn AuthnMiddlewareInterface, authorizer authorization.AuthorizerInterface) http.Handler {
	mux := chi.NewMux()
	NewAPI(authorizer, logging.NewNoopLogger()).RegisterEndpoints(mux, authn)
	return mux
}

func TestAPI_Me(t *testing.T) {
	principal := &authentication.Principal{
		Subject:          "subject-x",
		ProviderObjectID: "oid-x",
		DisplayName:      "Elminster Aumar",
	}

	router := newTestRouter(fakeAuthenticator{principal: principal}, stubAuthorizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var got authentication.Principal
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ProviderObjectID != principal.ProviderObjectID {
		t.Errorf("expected provider object id %s, got %s", principal.ProviderObjectID, got.ProviderObjectID)
	}
}

func TestAPI_Me_Unauthenticated(t *testing.T) {
	router := newTestRouter(fakeAuthenticator{}, stubAuthorizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAPI_MyRoles(t *testing.T) {
	principal := &authentication.Principal{Subject: "subject-x", ProviderObjectID: "oid-x"}

	tests := []struct {
		name           string
		authorizer     stubAuthorizer
		expectedStatus int
		expectedRoles  int
	}{
		{
			name:           "roles resolved",
			authorizer:     stubAuthorizer{roles: []authorization.Role{authorization.RoleDM, authorization.RolePlayer}},
			expectedStatus: http.StatusOK,
			expectedRoles:  2,
		},
		{
			name:           "unknown principal has empty roles",
			authorizer:     stubAuthorizer{},
			expectedStatus: http.StatusOK,
			expectedRoles:  0,
		},
		{
			name:           "role source failure",
			authorizer:     stubAuthorizer{err: errors.New("role document unreadable")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(fakeAuthenticator{principal: principal}, tt.authorizer)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me/roles", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp RolesResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.ProviderObjectID != principal.ProviderObjectID {
				t.Errorf("expected provider object id %s, got %s", principal.ProviderObjectID, resp.ProviderObjectID)
			}
			if resp.Roles == nil {
				t.Error("expected a role array, got null")
			}
			if len(resp.Roles) != tt.expectedRoles {
				t.Errorf("expected %d roles, got %d", tt.expectedRoles, len(resp.Roles))
			}
		})
	}
}
