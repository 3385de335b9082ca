// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

type stubVerifier struct {
	principal *Principal
	err       error
	called    bool
}

func (v *stubVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	v.called = true
	return v.principal, v.err
}

func newTestMiddleware(verifier TokenVerifierInterface) *Middleware {
	return NewMiddleware(
		verifier,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestMiddleware_Authenticate(t *testing.T) {
	principal := &Principal{Subject: "user-subject", ProviderObjectID: "oid-1"}

	testCases := []struct {
		name            string
		authorization   string
		verifier        *stubVerifier
		expectedStatus  int
		verifierSkipped bool
	}{
		{
			name:            "missing header",
			authorization:   "",
			verifier:        &stubVerifier{principal: principal},
			expectedStatus:  http.StatusUnauthorized,
			verifierSkipped: true,
		},
		{
			name:            "not a bearer scheme",
			authorization:   "Basic dXNlcjpwYXNz",
			verifier:        &stubVerifier{principal: principal},
			expectedStatus:  http.StatusUnauthorized,
			verifierSkipped: true,
		},
		{
			name:            "empty credential",
			authorization:   "Bearer ",
			verifier:        &stubVerifier{principal: principal},
			expectedStatus:  http.StatusUnauthorized,
			verifierSkipped: true,
		},
		{
			name:           "verification failure",
			authorization:  "Bearer some-token",
			verifier:       &stubVerifier{err: NewAuthenticationError(ReasonExpired, errors.New("token is expired"))},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "success",
			authorization:  "Bearer some-token",
			verifier:       &stubVerifier{principal: principal},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPrincipal *Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := newTestMiddleware(tc.verifier).Authenticate()(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/markers", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.verifierSkipped && tc.verifier.called {
				t.Error("verifier must not run without a bearer credential")
			}

			if tc.expectedStatus == http.StatusOK && gotPrincipal == nil {
				t.Error("expected principal in request context")
			}
		})
	}
}

// The body of a 401 never reveals why the token was rejected.
func TestMiddleware_GenericRejectionBody(t *testing.T) {
	for _, verifier := range []*stubVerifier{
		{err: NewAuthenticationError(ReasonExpired, errors.New("token is expired"))},
		{err: NewAuthenticationError(ReasonWrongAudience, errors.New("aud mismatch"))},
		{err: NewAuthenticationError(ReasonBadSignature, errors.New("crypto/rsa: verification error"))},
	} {
		handler := newTestMiddleware(verifier).Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
		if body := rec.Body.String(); body != "{\"message\":\"invalid token\",\"status\":401}\n" {
			t.Errorf("unexpected rejection body: %s", body)
		}
	}
}
