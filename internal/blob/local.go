// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

var _ BlobInterface = (*LocalBlobStore)(nil)

// LocalBlobStore persists blobs as files under a base directory. Paths are
// slash-separated and resolved relative to the base; anything escaping the
// base directory is rejected.
type LocalBlobStore struct {
	base string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *LocalBlobStore) resolve(path string) (string, error) {
	if path == "" || strings.Contains(path, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return filepath.Join(s.base, filepath.FromSlash(path)), nil
}

func (s *LocalBlobStore) Read(ctx context.Context, path string) ([]byte, error) {
	_, span := s.tracer.Start(ctx, "blob.LocalBlobStore.Read")
	defer span.End()

	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", path, err)
	}

	return data, nil
}

func (s *LocalBlobStore) Write(ctx context.Context, path string, data []byte) error {
	_, span := s.tracer.Start(ctx, "blob.LocalBlobStore.Write")
	defer span.End()

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create blob directory for %s: %w", path, err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}

	return nil
}

func (s *LocalBlobStore) Delete(ctx context.Context, path string) error {
	_, span := s.tracer.Start(ctx, "blob.LocalBlobStore.Delete")
	defer span.End()

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to delete blob %s: %w", path, err)
	}

	return nil
}

func (s *LocalBlobStore) Exists(ctx context.Context, path string) (bool, error) {
	_, span := s.tracer.Start(ctx, "blob.LocalBlobStore.Exists")
	defer span.End()

	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat blob %s: %w", path, err)
	}

	return true, nil
}

func (s *LocalBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	_, span := s.tracer.Start(ctx, "blob.LocalBlobStore.List")
	defer span.End()

	paths := []string{}
	err := filepath.WalkDir(s.base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.base, p)
		if err != nil {
			return err
		}

		slashed := filepath.ToSlash(rel)
		if strings.HasPrefix(slashed, prefix) {
			paths = append(paths, slashed)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list blobs under %q: %w", prefix, err)
	}

	return paths, nil
}

func NewLocalBlobStore(base string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*LocalBlobStore, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob base directory %s: %w", base, err)
	}

	return &LocalBlobStore{
		base:    base,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}
