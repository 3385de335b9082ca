// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dndhub/campaign-service/internal/db"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMarker")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate marker ID: %w", err)
	}

	var marker types.MapMarker
	err = s.db.Statement(ctx).
		Insert("map_markers").
		Columns("id", "name", "description", "latitude", "longitude", "map_id", "icon_type").
		Values(id.String(), m.Name, m.Description, m.Latitude, m.Longitude, m.MapID, m.IconType).
		Suffix("RETURNING id, name, description, latitude, longitude, map_id, icon_type, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&marker.ID, &marker.Name, &marker.Description, &marker.Latitude, &marker.Longitude, &marker.MapID, &marker.IconType, &marker.CreatedAt, &marker.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert marker: %w", err)
	}

	return &marker, nil
}

func (s *Storage) GetMarkerByID(ctx context.Context, id string) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMarkerByID")
	defer span.End()

	var m types.MapMarker
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "latitude", "longitude", "map_id", "icon_type", "created_at", "updated_at").
		From("map_markers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.Name, &m.Description, &m.Latitude, &m.Longitude, &m.MapID, &m.IconType, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get marker: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMarkers(ctx context.Context, mapID string) ([]*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMarkers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "description", "latitude", "longitude", "map_id", "icon_type", "created_at", "updated_at").
		From("map_markers").
		OrderBy("created_at")

	if mapID != "" {
		query = query.Where(sq.Eq{"map_id": mapID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list markers: %w", err)
	}
	defer rows.Close()

	var markers []*types.MapMarker
	for rows.Next() {
		var m types.MapMarker
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Latitude, &m.Longitude, &m.MapID, &m.IconType, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan marker: %w", err)
		}
		markers = append(markers, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return markers, nil
}

func (s *Storage) UpdateMarker(ctx context.Context, m *types.MapMarker) (*types.MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMarker")
	defer span.End()

	var updated types.MapMarker
	err := s.db.Statement(ctx).
		Update("map_markers").
		SetMap(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"latitude":    m.Latitude,
			"longitude":   m.Longitude,
			"map_id":      m.MapID,
			"icon_type":   m.IconType,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": m.ID}).
		Suffix("RETURNING id, name, description, latitude, longitude, map_id, icon_type, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Latitude, &updated.Longitude, &updated.MapID, &updated.IconType, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update marker: %w", err)
	}

	return &updated, nil
}

func (s *Storage) DeleteMarker(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMarker")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("map_markers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete marker: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCharacter")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate character ID: %w", err)
	}

	var character types.Character
	err = s.db.Statement(ctx).
		Insert("characters").
		Columns("id", "name", "race", "class", "level", "stats").
		Values(id.String(), c.Name, c.Race, c.Class, c.Level, c.Stats).
		Suffix("RETURNING id, name, race, class, level, stats, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&character.ID, &character.Name, &character.Race, &character.Class, &character.Level, &character.Stats, &character.CreatedAt, &character.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert character: %w", err)
	}

	return &character, nil
}

func (s *Storage) GetCharacterByID(ctx context.Context, id string) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCharacterByID")
	defer span.End()

	var c types.Character
	err := s.db.Statement(ctx).
		Select("id", "name", "race", "class", "level", "stats", "created_at", "updated_at").
		From("characters").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Race, &c.Class, &c.Level, &c.Stats, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCharacters(ctx context.Context) ([]*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCharacters")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "race", "class", "level", "stats", "created_at", "updated_at").
		From("characters").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	var characters []*types.Character
	for rows.Next() {
		var c types.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Race, &c.Class, &c.Level, &c.Stats, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return characters, nil
}

func (s *Storage) UpdateCharacter(ctx context.Context, c *types.Character) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCharacter")
	defer span.End()

	var updated types.Character
	err := s.db.Statement(ctx).
		Update("characters").
		SetMap(map[string]interface{}{
			"name":       c.Name,
			"race":       c.Race,
			"class":      c.Class,
			"level":      c.Level,
			"stats":      c.Stats,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING id, name, race, class, level, stats, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.Name, &updated.Race, &updated.Class, &updated.Level, &updated.Stats, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update character: %w", err)
	}

	return &updated, nil
}

func (s *Storage) DeleteCharacter(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCharacter")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("characters").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
