// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/dndhub/campaign-service/internal/types"
)

type StorageInterface interface {
	CreateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	GetMarkerByID(ctx context.Context, id string) (*types.MapMarker, error)
	ListMarkers(ctx context.Context, mapID string) ([]*types.MapMarker, error)
	UpdateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error)
	DeleteMarker(ctx context.Context, id string) error

	CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	GetCharacterByID(ctx context.Context, id string) (*types.Character, error)
	ListCharacters(ctx context.Context) ([]*types.Character, error)
	UpdateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
}
