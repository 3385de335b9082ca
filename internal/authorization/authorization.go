// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/pkg/authentication"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer evaluates CNF role policies against a role source. The role
// source is shared read-only state across concurrent requests; the Authorizer
// itself holds nothing mutable.
type Authorizer struct {
	roles RoleSourceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) GetRoles(ctx context.Context, principal *authentication.Principal) ([]Role, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.GetRoles")
	defer span.End()

	return a.roles.GetRoles(ctx, principal.ProviderObjectID)
}

func (a *Authorizer) RequireCNFRoles(ctx context.Context, principal *authentication.Principal, policy Policy) (*authentication.Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireCNFRoles")
	defer span.End()

	userRoles, err := a.GetRoles(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roles for %s: %w", principal.ProviderObjectID, err)
	}

	for _, roleSet := range policy {
		if !intersects(userRoles, roleSet) {
			a.logger.Debugf("denying %s with roles %v: missing role from %v", principal.ProviderObjectID, userRoles, roleSet)
			a.logger.Security().AuthzFailure(principal.Subject, fmt.Sprintf("cnf_role_check %v", roleSet))
			return nil, NewAuthorizationError(roleSet)
		}
	}

	a.logger.Debugf("granting %s with roles %v against policy %v", principal.ProviderObjectID, userRoles, policy)
	return principal, nil
}

func intersects(userRoles []Role, roleSet []Role) bool {
	for _, r := range roleSet {
		if slices.Contains(userRoles, r) {
			return true
		}
	}
	return false
}

func NewAuthorizer(roles RoleSourceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.roles = roles
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
