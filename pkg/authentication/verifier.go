// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

type accessTokenClaims struct {
	jwt.RegisteredClaims

	ObjectID          string `json:"oid"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
}

// JWTVerifier validates RS256 access tokens issued by the configured identity
// provider and maps the verified claims onto a Principal. It holds no
// per-request state and re-verifies every token it is handed.
type JWTVerifier struct {
	resolver KeyResolverInterface
	issuer   string
	audience string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithIssuedAt(),
	)

	claims := new(accessTokenClaims)
	_, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return v.resolver.ResolveKey(ctx, rawToken)
	})
	if err != nil {
		return nil, v.fail(classifyVerificationError(err), err)
	}

	// Claim content validation: a syntactically valid token with empty
	// required claims is still rejected.
	switch {
	case claims.Subject == "":
		return nil, v.fail(ReasonMissingClaim, errors.New("empty sub claim"))
	case claims.ObjectID == "":
		return nil, v.fail(ReasonMissingClaim, errors.New("empty oid claim"))
	case claims.Issuer == "":
		return nil, v.fail(ReasonMissingClaim, errors.New("empty iss claim"))
	case len(claims.Audience) == 0 || claims.Audience[0] == "":
		return nil, v.fail(ReasonMissingClaim, errors.New("empty aud claim"))
	case claims.IssuedAt == nil:
		return nil, v.fail(ReasonMissingClaim, errors.New("missing iat claim"))
	case claims.NotBefore == nil:
		return nil, v.fail(ReasonMissingClaim, errors.New("missing nbf claim"))
	}

	return &Principal{
		Subject:           claims.Subject,
		ProviderObjectID:  claims.ObjectID,
		Issuer:            claims.Issuer,
		Audience:          claims.Audience[0],
		Expiration:        claims.ExpiresAt.Unix(),
		IssuedAt:          claims.IssuedAt.Unix(),
		NotBefore:         claims.NotBefore.Unix(),
		DisplayName:       claims.Name,
		PreferredUsername: claims.PreferredUsername,
	}, nil
}

func (v *JWTVerifier) fail(reason Reason, cause error) error {
	v.logger.Debugf("token verification failed (%s): %v", reason, cause)
	v.logger.Security().AuthnFailure(string(reason))
	return NewAuthenticationError(reason, cause)
}

func classifyVerificationError(err error) Reason {
	var keyErr *KeyResolutionError

	switch {
	case errors.As(err, &keyErr):
		return ReasonKeyResolution
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ReasonMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ReasonBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ReasonNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ReasonWrongIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ReasonWrongAudience
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ReasonMissingClaim
	default:
		return ReasonUnknown
	}
}

func NewJWTVerifier(
	resolver KeyResolverInterface,
	issuer string,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		resolver: resolver,
		issuer:   issuer,
		audience: audience,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
