// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

const (
	testIssuer   = "https://login.example.test/tenant/v2.0"
	testAudience = "api://campaign-service"
)

type failingResolver struct{}

func (failingResolver) ResolveKey(ctx context.Context, rawToken string) (interface{}, error) {
	return nil, NewKeyResolutionError(errors.New("jwks unreachable"))
}

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	return key
}

func newTestVerifier(resolver KeyResolverInterface) *JWTVerifier {
	return NewJWTVerifier(
		resolver,
		testIssuer,
		testAudience,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func validClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":                testIssuer,
		"aud":                testAudience,
		"sub":                "user-subject",
		"oid":                "11111111-2222-3333-4444-555555555555",
		"exp":                now.Add(time.Hour).Unix(),
		"iat":                now.Add(-time.Minute).Unix(),
		"nbf":                now.Add(-time.Minute).Unix(),
		"name":               "Elminster Aumar",
		"preferred_username": "elminster@example.test",
	}
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	key := newTestKey(t)
	v := newTestVerifier(NewStaticKeyResolver(&key.PublicKey))

	raw := signToken(t, key, validClaims(time.Now()))

	principal, err := v.VerifyToken(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if principal.Subject != "user-subject" {
		t.Errorf("expected subject user-subject, got %s", principal.Subject)
	}
	if principal.ProviderObjectID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("unexpected provider object id %s", principal.ProviderObjectID)
	}
	if principal.Issuer != testIssuer {
		t.Errorf("unexpected issuer %s", principal.Issuer)
	}
	if principal.Audience != testAudience {
		t.Errorf("unexpected audience %s", principal.Audience)
	}
	if principal.DisplayName != "Elminster Aumar" {
		t.Errorf("unexpected display name %s", principal.DisplayName)
	}
	if principal.PreferredUsername != "elminster@example.test" {
		t.Errorf("unexpected preferred username %s", principal.PreferredUsername)
	}
}

func TestJWTVerifier_Failures(t *testing.T) {
	key := newTestKey(t)
	otherKey := newTestKey(t)
	now := time.Now()

	testCases := []struct {
		name           string
		token          func(t *testing.T) string
		resolver       KeyResolverInterface
		expectedReason Reason
	}{
		{
			name:           "malformed token",
			token:          func(t *testing.T) string { return "not-a-jwt" },
			expectedReason: ReasonMalformed,
		},
		{
			name: "signed with unknown key",
			token: func(t *testing.T) string {
				return signToken(t, otherKey, validClaims(now))
			},
			expectedReason: ReasonBadSignature,
		},
		{
			name: "symmetric algorithm rejected",
			token: func(t *testing.T) string {
				raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(now)).SignedString([]byte("secret"))
				if err != nil {
					t.Fatalf("failed to sign token: %v", err)
				}
				return raw
			},
			expectedReason: ReasonBadSignature,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				claims["exp"] = now.Add(-time.Hour).Unix()
				return signToken(t, key, claims)
			},
			expectedReason: ReasonExpired,
		},
		{
			name: "not valid yet",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				claims["nbf"] = now.Add(time.Hour).Unix()
				return signToken(t, key, claims)
			},
			expectedReason: ReasonNotYetValid,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				claims["iss"] = "https://evil.example.test"
				return signToken(t, key, claims)
			},
			expectedReason: ReasonWrongIssuer,
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				claims["aud"] = "api://some-other-service"
				return signToken(t, key, claims)
			},
			expectedReason: ReasonWrongAudience,
		},
		{
			name: "missing expiration",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				delete(claims, "exp")
				return signToken(t, key, claims)
			},
			expectedReason: ReasonMissingClaim,
		},
		{
			name: "empty subject",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				claims["sub"] = ""
				return signToken(t, key, claims)
			},
			expectedReason: ReasonMissingClaim,
		},
		{
			name: "missing object id",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				delete(claims, "oid")
				return signToken(t, key, claims)
			},
			expectedReason: ReasonMissingClaim,
		},
		{
			name: "missing not before",
			token: func(t *testing.T) string {
				claims := validClaims(now)
				delete(claims, "nbf")
				return signToken(t, key, claims)
			},
			expectedReason: ReasonMissingClaim,
		},
		{
			name: "key resolution failure",
			token: func(t *testing.T) string {
				return signToken(t, key, validClaims(now))
			},
			resolver:       failingResolver{},
			expectedReason: ReasonKeyResolution,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := tc.resolver
			if resolver == nil {
				resolver = NewStaticKeyResolver(&key.PublicKey)
			}
			v := newTestVerifier(resolver)

			principal, err := v.VerifyToken(context.Background(), tc.token(t))
			if principal != nil {
				t.Error("expected nil principal on failure")
			}
			if err == nil {
				t.Fatal("expected an error")
			}

			var authErr *AuthenticationError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected *AuthenticationError, got %T: %v", err, err)
			}
			if authErr.Reason != tc.expectedReason {
				t.Errorf("expected reason %s, got %s", tc.expectedReason, authErr.Reason)
			}
		})
	}
}

func TestLocalFakeVerifier(t *testing.T) {
	principal, err := NewLocalFakeVerifier().VerifyToken(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.ProviderObjectID != "local-dev-oid" {
		t.Errorf("unexpected provider object id %s", principal.ProviderObjectID)
	}
}
