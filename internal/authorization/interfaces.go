// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"net/http"

	"github.com/dndhub/campaign-service/pkg/authentication"
)

type AuthorizerInterface interface {
	// RequireCNFRoles grants access iff every role set in the policy
	// intersects the principal's roles, evaluated in declaration order.
	RequireCNFRoles(ctx context.Context, principal *authentication.Principal, policy Policy) (*authentication.Principal, error)
	// GetRoles resolves the principal's roles by provider object id. An
	// unknown id yields an empty set, not an error.
	GetRoles(ctx context.Context, principal *authentication.Principal) ([]Role, error)
}

type RoleSourceInterface interface {
	GetRoles(ctx context.Context, providerObjectID string) ([]Role, error)
}

// BlobReaderInterface is the read-only subset of the blob collaborator the
// persisted role source needs.
type BlobReaderInterface interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// AuthenticatorMiddlewareInterface is the authentication dependency the
// authorization middleware composes with, so authorization always implies
// authentication.
type AuthenticatorMiddlewareInterface interface {
	Authenticate() func(http.Handler) http.Handler
}
