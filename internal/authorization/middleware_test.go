// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/pkg/authentication"
)

// fakeAuthenticator either rejects every request with 401 or injects a fixed
// principal, standing in for the authentication middleware.
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

func newTestMiddleware(authn AuthenticatorMiddlewareInterface, authorizer AuthorizerInterface) *Middleware {
	return NewMiddleware(
		authn,
		authorizer,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestMiddleware_RequireRoles(t *testing.T) {
	principal := &authentication.Principal{Subject: "subject-x", ProviderObjectID: "X"}
	policy := Policy{{RoleDM, RoleAdmin}}

	testCases := []struct {
		name           string
		authn          fakeAuthenticator
		setupMocks     func(*MockAuthorizerInterface)
		expectedStatus int
	}{
		{
			name:  "unauthenticated request never reaches the authorizer",
			authn: fakeAuthenticator{},
			setupMocks: func(mockAuthz *MockAuthorizerInterface) {
				// no calls expected
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "denied policy is forbidden not unauthorized",
			authn: fakeAuthenticator{principal: principal},
			setupMocks: func(mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireCNFRoles(gomock.Any(), principal, policy).Return(nil, NewAuthorizationError([]Role{RoleDM, RoleAdmin}))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "granted policy passes through",
			authn: fakeAuthenticator{principal: principal},
			setupMocks: func(mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireCNFRoles(gomock.Any(), principal, policy).Return(principal, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "role source failure is an internal error",
			authn: fakeAuthenticator{principal: principal},
			setupMocks: func(mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireCNFRoles(gomock.Any(), principal, policy).Return(nil, errors.New("role document unreadable"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthz := NewMockAuthorizerInterface(ctrl)
			tc.setupMocks(mockAuthz)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := newTestMiddleware(tc.authn, mockAuthz).RequireRoles(policy)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/markers", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

// A broken authenticator that admits a request without attaching a principal
// must be treated as unauthorized, not as an open door.
func TestMiddleware_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthz := NewMockAuthorizerInterface(ctrl)

	passthrough := NewMockAuthenticatorMiddlewareInterface(ctrl)
	passthrough.EXPECT().Authenticate().Return(func(next http.Handler) http.Handler { return next })

	handler := newTestMiddleware(passthrough, mockAuthz).RequireRoles(Policy{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
