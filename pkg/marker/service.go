// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package marker

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

func (s *Service) CreateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "marker.Service.CreateMarker")
	defer span.End()

	s.logger.Debugf("creating map marker %q on map %s", m.Name, m.MapID)
	return s.storage.CreateMarker(ctx, m)
}

func (s *Service) GetMarker(ctx context.Context, id string) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "marker.Service.GetMarker")
	defer span.End()

	return s.storage.GetMarkerByID(ctx, id)
}

func (s *Service) ListMarkers(ctx context.Context, mapID string) ([]*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "marker.Service.ListMarkers")
	defer span.End()

	return s.storage.ListMarkers(ctx, mapID)
}

func (s *Service) UpdateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "marker.Service.UpdateMarker")
	defer span.End()

	s.logger.Debugf("updating map marker %s", m.ID)
	return s.storage.UpdateMarker(ctx, m)
}

func (s *Service) DeleteMarker(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "marker.Service.DeleteMarker")
	defer span.End()

	s.logger.Debugf("deleting map marker %s", id)
	return s.storage.DeleteMarker(ctx, id)
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
