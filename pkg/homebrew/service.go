// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package homebrew

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/internal/types"
)

const documentPrefix = "homebrew/"

var _ ServiceInterface = (*Service)(nil)

// Service stores homebrew documents as JSON blobs, one document per blob.
type Service struct {
	store BlobInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func documentPath(id string) string {
	return fmt.Sprintf("%s%s.json", documentPrefix, id)
}

func (s *Service) ListDocuments(ctx context.Context) ([]*types.HomebrewDocumentSummary, error) {
	ctx, span := s.tracer.Start(ctx, "homebrew.Service.ListDocuments")
	defer span.End()

	paths, err := s.store.List(ctx, documentPrefix)
	if err != nil {
		return nil, err
	}

	summaries := []*types.HomebrewDocumentSummary{}
	for _, p := range paths {
		if !strings.HasSuffix(p, ".json") {
			continue
		}

		data, err := s.store.Read(ctx, p)
		if err != nil {
			s.logger.Warnf("skipping unreadable homebrew document %s: %v", p, err)
			continue
		}

		var doc types.HomebrewDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			s.logger.Warnf("skipping malformed homebrew document %s: %v", p, err)
			continue
		}

		summaries = append(summaries, &types.HomebrewDocumentSummary{
			ID:    doc.ID,
			Title: doc.Title,
		})
	}

	return summaries, nil
}

func (s *Service) GetDocument(ctx context.Context, id string) (*types.HomebrewDocument, error) {
	ctx, span := s.tracer.Start(ctx, "homebrew.Service.GetDocument")
	defer span.End()

	data, err := s.store.Read(ctx, documentPath(id))
	if err != nil {
		return nil, err
	}

	var doc types.HomebrewDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse homebrew document %s: %w", id, err)
	}

	return &doc, nil
}

func (s *Service) PutDocument(ctx context.Context, doc *types.HomebrewDocument) error {
	ctx, span := s.tracer.Start(ctx, "homebrew.Service.PutDocument")
	defer span.End()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize homebrew document %s: %w", doc.ID, err)
	}

	s.logger.Debugf("storing homebrew document %s", doc.ID)
	return s.store.Write(ctx, documentPath(doc.ID), data)
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "homebrew.Service.DeleteDocument")
	defer span.End()

	s.logger.Debugf("deleting homebrew document %s", id)
	return s.store.Delete(ctx, documentPath(id))
}

func NewService(
	store BlobInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:   store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
