// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
)

// AuthorizationError reports the first unsatisfied role set of a CNF policy.
// It is surfaced to the transport boundary as forbidden, never unauthorized.
type AuthorizationError struct {
	RoleSet []Role
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: principal holds no role from %v", e.RoleSet)
}

func NewAuthorizationError(roleSet []Role) *AuthorizationError {
	return &AuthorizationError{RoleSet: roleSet}
}
