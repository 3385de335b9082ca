// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package character

import (
	"context"

	"github.com/dndhub/campaign-service/internal/types"
)

type ServiceInterface interface {
	CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	GetCharacter(ctx context.Context, id string) (*types.Character, error)
	ListCharacters(ctx context.Context) ([]*types.Character, error)
	UpdateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
}

// StorageInterface is the subset of the storage layer the character service needs.
type StorageInterface interface {
	CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	GetCharacterByID(ctx context.Context, id string) (*types.Character, error)
	ListCharacters(ctx context.Context) ([]*types.Character, error)
	UpdateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
}
