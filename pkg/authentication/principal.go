// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

// Principal is the authenticated identity derived from a verified token.
// It is built exclusively from claims that passed signature and registered
// claim validation, lives for the duration of a single request and is never
// persisted.
//
// ProviderObjectID is the immutable per-account identifier assigned by the
// identity provider (the `oid` claim). It is the key used for authorization
// lookups; Subject is a display-only claim and must not be used as an
// authorization key.
type Principal struct {
	Subject          string `json:"subject"`
	ProviderObjectID string `json:"provider_object_id"`
	Issuer           string `json:"issuer"`
	Audience         string `json:"audience"`
	Expiration       int64  `json:"expiration"`
	IssuedAt         int64  `json:"issued_at"`
	NotBefore        int64  `json:"not_before"`

	DisplayName       string `json:"display_name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}
