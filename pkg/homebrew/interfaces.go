// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package homebrew

import (
	"context"

	"github.com/dndhub/campaign-service/internal/types"
)

type ServiceInterface interface {
	ListDocuments(ctx context.Context) ([]*types.HomebrewDocumentSummary, error)
	GetDocument(ctx context.Context, id string) (*types.HomebrewDocument, error)
	PutDocument(ctx context.Context, doc *types.HomebrewDocument) error
	DeleteDocument(ctx context.Context, id string) error
}

// BlobInterface is the subset of the blob store the homebrew service needs.
type BlobInterface interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
