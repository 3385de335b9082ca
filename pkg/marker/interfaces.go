// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package marker

import (
	"context"

	"github.com/dndhub/campaign-service/internal/types"
)

type ServiceInterface interface {
	CreateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	GetMarker(ctx context.Context, id string) (*types.MapMarker, error)
	ListMarkers(ctx context.Context, mapID string) ([]*types.MapMarker, error)
	UpdateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	DeleteMarker(ctx context.Context, id string) error
}

// StorageInterface is the subset of the storage layer the marker service needs.
type StorageInterface interface {
	CreateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	GetMarkerByID(ctx context.Context, id string) (*types.MapMarker, error)
	ListMarkers(ctx context.Context, mapID string) ([]*types.MapMarker, error)
	UpdateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	DeleteMarker(ctx context.Context, id string) error
}
