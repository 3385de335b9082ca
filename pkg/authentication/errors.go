// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
)

// Reason classifies why a token failed verification. Reasons are recorded in
// server-side logs only; the transport boundary always replies with a generic
// unauthorized message so callers cannot probe claim validity.
type Reason string

const (
	ReasonMalformed     Reason = "malformed"
	ReasonBadSignature  Reason = "bad_signature"
	ReasonExpired       Reason = "expired"
	ReasonNotYetValid   Reason = "not_yet_valid"
	ReasonWrongIssuer   Reason = "wrong_issuer"
	ReasonWrongAudience Reason = "wrong_audience"
	ReasonMissingClaim  Reason = "missing_claim"
	ReasonKeyResolution Reason = "key_resolution"
	ReasonUnknown       Reason = "unknown"
)

// AuthenticationError is the single error type surfaced by token verifiers.
// No error from the underlying jwt library escapes unwrapped.
type AuthenticationError struct {
	Reason Reason
	cause  error
}

func (e *AuthenticationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("authentication failed (%s): %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("authentication failed (%s)", e.Reason)
}

func (e *AuthenticationError) Unwrap() error {
	return e.cause
}

func NewAuthenticationError(reason Reason, cause error) *AuthenticationError {
	return &AuthenticationError{Reason: reason, cause: cause}
}

// KeyResolutionError indicates the signing key for a token could not be
// obtained, either because the remote key set is unreachable or because no
// key matches the token's key id.
type KeyResolutionError struct {
	cause error
}

func (e *KeyResolutionError) Error() string {
	return fmt.Sprintf("signing key resolution failed: %v", e.cause)
}

func (e *KeyResolutionError) Unwrap() error {
	return e.cause
}

func NewKeyResolutionError(cause error) *KeyResolutionError {
	return &KeyResolutionError{cause: cause}
}
