// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/pkg/authentication"
)

// Middleware builds per-route authorization checks. Every check composes the
// authentication middleware with a policy evaluation, so authorization is
// never applied to an unauthenticated request.
type Middleware struct {
	authn      AuthenticatorMiddlewareInterface
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRoles returns a middleware enforcing the given CNF policy. An empty
// policy still requires authentication but grants every principal.
func (m *Middleware) RequireRoles(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		check := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRoles")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				// Unreachable when wired behind Authenticate; kept as a
				// hard failure rather than an open door.
				m.errorResponse(w, http.StatusUnauthorized, "missing principal")
				return
			}

			if _, err := m.authorizer.RequireCNFRoles(ctx, principal, policy); err != nil {
				var authzErr *AuthorizationError
				if errors.As(err, &authzErr) {
					// Forbidden, not unauthorized: the caller was identified
					// but denied. The unsatisfied role set stays in the logs.
					m.errorResponse(w, http.StatusForbidden, "forbidden")
					return
				}

				m.logger.Errorf("authorization check failed: %v", err)
				m.errorResponse(w, http.StatusInternalServerError, "authorization check failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})

		return m.authn.Authenticate()(check)
	}
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(
	authn AuthenticatorMiddlewareInterface,
	authorizer AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		authn:      authn,
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
