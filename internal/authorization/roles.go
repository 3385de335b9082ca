// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
)

// Role is an opaque tag from a closed set. Roles carry no hierarchy; policy
// decisions only ever test set membership.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
	RoleDM     Role = "dm"
	RoleGuest  Role = "guest"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RolePlayer, RoleDM, RoleGuest:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Policy is a role requirement in conjunctive normal form: an ordered
// sequence of role sets, every one of which must intersect the principal's
// roles. An empty policy always grants; a policy containing an empty set can
// never be satisfied and acts as deny-all.
type Policy [][]Role
