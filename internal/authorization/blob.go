// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
)

var _ RoleSourceInterface = (*BlobRoleSource)(nil)

// userRoleRecord is the persisted association between a provider object id
// and its role set, plus denormalized display metadata.
type userRoleRecord struct {
	Roles             []string `json:"roles"`
	Name              string   `json:"name"`
	PreferredUsername string   `json:"preferred_username"`
	Subject           string   `json:"subject"`
}

// BlobRoleSource loads a JSON role document from the blob collaborator on
// first use and caches it for the lifetime of the source. There is no refresh
// path: the table is stale until process restart, which is an accepted
// limitation of this deployment.
type BlobRoleSource struct {
	blob BlobReaderInterface
	path string

	mu      sync.RWMutex
	records map[string][]Role

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (b *BlobRoleSource) GetRoles(ctx context.Context, providerObjectID string) ([]Role, error) {
	ctx, span := b.tracer.Start(ctx, "authorization.BlobRoleSource.GetRoles")
	defer span.End()

	records, err := b.load(ctx)
	if err != nil {
		return nil, err
	}

	roles, ok := records[providerObjectID]
	if !ok {
		b.logger.Debugf("no role record for %s", providerObjectID)
		return []Role{}, nil
	}

	out := make([]Role, len(roles))
	copy(out, roles)
	return out, nil
}

// load returns the cached role table, fetching it on first access. The cache
// is replaced whole under the write lock, never partially mutated; a failed
// fetch leaves it unset so the next request retries.
func (b *BlobRoleSource) load(ctx context.Context) (map[string][]Role, error) {
	b.mu.RLock()
	records := b.records
	b.mu.RUnlock()
	if records != nil {
		return records, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.records != nil {
		return b.records, nil
	}

	exists, err := b.blob.Exists(ctx, b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check role document %s: %w", b.path, err)
	}
	if !exists {
		b.logger.Warnf("role document %s does not exist, all principals get empty role sets", b.path)
		b.records = map[string][]Role{}
		return b.records, nil
	}

	data, err := b.blob.Read(ctx, b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role document %s: %w", b.path, err)
	}

	var raw map[string]userRoleRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid role document %s: %w", b.path, err)
	}

	records = make(map[string][]Role, len(raw))
	for oid, record := range raw {
		roles := make([]Role, 0, len(record.Roles))
		for _, s := range record.Roles {
			role, err := ParseRole(s)
			if err != nil {
				b.logger.Warnf("skipping role for %s: %v", oid, err)
				continue
			}
			roles = append(roles, role)
		}
		records[oid] = roles
	}

	b.logger.Infof("loaded %d user role records from %s", len(records), b.path)
	b.records = records
	return b.records, nil
}

func NewBlobRoleSource(
	blob BlobReaderInterface,
	path string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *BlobRoleSource {
	return &BlobRoleSource{
		blob:    blob,
		path:    path,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
