// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package character

import (
	"context"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "character.Service.CreateCharacter")
	defer span.End()

	s.logger.Debugf("creating character %q", c.Name)
	return s.storage.CreateCharacter(ctx, c)
}

func (s *Service) GetCharacter(ctx context.Context, id string) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "character.Service.GetCharacter")
	defer span.End()

	return s.storage.GetCharacterByID(ctx, id)
}

func (s *Service) ListCharacters(ctx context.Context) ([]*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "character.Service.ListCharacters")
	defer span.End()

	return s.storage.ListCharacters(ctx)
}

func (s *Service) UpdateCharacter(ctx context.Context, c *types.Character) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "character.Service.UpdateCharacter")
	defer span.End()

	s.logger.Debugf("updating character %s", c.ID)
	return s.storage.UpdateCharacter(ctx, c)
}

func (s *Service) DeleteCharacter(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "character.Service.DeleteCharacter")
	defer span.End()

	s.logger.Debugf("deleting character %s", id)
	return s.storage.DeleteCharacter(ctx, id)
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
