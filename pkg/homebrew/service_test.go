// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package homebrew

import (
	"context"
	"errors"
	"testing"

	"github.com/dndhub/campaign-service/internal/blob"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/internal/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	store, err := blob.NewLocalBlobStore(t.TempDir(), tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}

	return NewService(store, tracer, monitor, logger)
}

func TestService_PutAndGetDocument(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	doc := &types.HomebrewDocument{
		ID:      "gritty-rests",
		Title:   "Gritty Realism Rests",
		Content: "A short rest takes 8 hours, a long rest takes 7 days.",
	}

	if err := s.PutDocument(ctx, doc); err != nil {
		t.Fatalf("failed to store document: %v", err)
	}

	got, err := s.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("failed to read document back: %v", err)
	}

	if got.Title != doc.Title || got.Content != doc.Content {
		t.Errorf("document round trip mismatch: got %+v", got)
	}
}

func TestService_GetDocument_NotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.GetDocument(context.Background(), "no-such-doc")
	if !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected %v, got %v", blob.ErrNotFound, err)
	}
}

func TestService_ListDocuments(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	docs := []*types.HomebrewDocument{
		{ID: "doc-1", Title: "Critical Fumbles"},
		{ID: "doc-2", Title: "Flanking Rules"},
	}
	for _, doc := range docs {
		if err := s.PutDocument(ctx, doc); err != nil {
			t.Fatalf("failed to store document %s: %v", doc.ID, err)
		}
	}

	summaries, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("failed to list documents: %v", err)
	}

	if len(summaries) != len(docs) {
		t.Fatalf("expected %d summaries, got %d", len(docs), len(summaries))
	}

	titles := map[string]string{}
	for _, summary := range summaries {
		titles[summary.ID] = summary.Title
	}
	for _, doc := range docs {
		if titles[doc.ID] != doc.Title {
			t.Errorf("expected title %q for %s, got %q", doc.Title, doc.ID, titles[doc.ID])
		}
	}
}

func TestService_ListDocuments_Empty(t *testing.T) {
	s := newTestService(t)

	summaries, err := s.ListDocuments(context.Background())
	if err != nil {
		t.Fatalf("failed to list documents: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no summaries, got %d", len(summaries))
	}
}

func TestService_DeleteDocument(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	doc := &types.HomebrewDocument{ID: "doc-1", Title: "Critical Fumbles"}
	if err := s.PutDocument(ctx, doc); err != nil {
		t.Fatalf("failed to store document: %v", err)
	}

	if err := s.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("failed to delete document: %v", err)
	}

	if _, err := s.GetDocument(ctx, doc.ID); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected %v after delete, got %v", blob.ErrNotFound, err)
	}

	if err := s.DeleteDocument(ctx, doc.ID); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected %v on second delete, got %v", blob.ErrNotFound, err)
	}
}
