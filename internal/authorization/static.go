// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/dndhub/campaign-service/internal/logging"
)

var _ RoleSourceInterface = (*StaticRoleSource)(nil)

// StaticRoleSource serves roles from an in-memory constant mapping keyed by
// provider object id. Suitable for fixed-operator deployments and tests.
type StaticRoleSource struct {
	assignments map[string][]Role

	logger logging.LoggerInterface
}

func (s *StaticRoleSource) GetRoles(ctx context.Context, providerObjectID string) ([]Role, error) {
	roles, ok := s.assignments[providerObjectID]
	if !ok {
		// Absence of a record means "no roles", not a lookup failure.
		s.logger.Debugf("no role record for %s", providerObjectID)
		return []Role{}, nil
	}

	out := make([]Role, len(roles))
	copy(out, roles)
	return out, nil
}

func NewStaticRoleSource(assignments map[string][]Role, logger logging.LoggerInterface) *StaticRoleSource {
	if assignments == nil {
		assignments = map[string][]Role{}
	}
	return &StaticRoleSource{
		assignments: assignments,
		logger:      logger,
	}
}
