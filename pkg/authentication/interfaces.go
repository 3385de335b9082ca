// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and maps its claims onto a Principal.
	// It never returns a partially populated Principal; any failure yields an
	// *AuthenticationError.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}

type KeyResolverInterface interface {
	// ResolveKey returns the public key material needed to verify the given
	// token's signature. Failures are reported as *KeyResolutionError.
	ResolveKey(ctx context.Context, rawToken string) (interface{}, error)
}
