// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

const (
	ModeLocalFake = "local_fake"
	ModeEntra     = "entra"
)

// NewVerifier selects the token verifier once at startup based on the
// configured auth mode. This is the only place aware of concrete verifier
// implementations; request-time dispatch is a single interface call.
func NewVerifier(
	ctx context.Context,
	mode string,
	issuer string,
	audience string,
	jwksURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch mode {
	case ModeLocalFake:
		logger.Warn("Using local fake authentication, all requests map to a dev user")
		return NewLocalFakeVerifier(), nil
	case ModeEntra:
		if issuer == "" || audience == "" {
			return nil, fmt.Errorf("issuer and audience are required for %s authentication", ModeEntra)
		}

		resolver, err := NewJWKSKeyResolver(ctx, jwksURL, tracer, monitor, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS key resolver: %w", err)
		}

		logger.Infof("JWT authentication enabled, issuer: %s", issuer)
		return NewJWTVerifier(resolver, issuer, audience, tracer, monitor, logger), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %q", mode)
	}
}
