// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"
)

var _ TokenVerifierInterface = (*LocalFakeVerifier)(nil)

// LocalFakeVerifier returns a fixed development principal without validating
// the token. Any non-empty bearer credential is accepted; never enable this
// outside local development.
type LocalFakeVerifier struct{}

func NewLocalFakeVerifier() *LocalFakeVerifier {
	return &LocalFakeVerifier{}
}

func (v *LocalFakeVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	now := time.Now()
	return &Principal{
		Subject:           "local-dev-user",
		ProviderObjectID:  "local-dev-oid",
		Issuer:            "local-fake",
		Audience:          "local-fake",
		Expiration:        now.Add(time.Hour).Unix(),
		IssuedAt:          now.Unix(),
		NotBefore:         now.Unix(),
		DisplayName:       "Local Dev User",
		PreferredUsername: "local-dev-user",
	}, nil
}
