// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package marker

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package marker -destination ./mock_marker.go -source=./interfaces.go

func newTestService(storage StorageInterface) *Service {
	return NewService(
		storage,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestService_ListMarkers(t *testing.T) {
	mapID := "overworld"
	expectedMarkers := []*types.MapMarker{
		{ID: "marker-1", Name: "Waterdeep", MapID: mapID},
		{ID: "marker-2", Name: "Baldur's Gate", MapID: mapID},
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		setupMocks      func(*MockStorageInterface)
		expectedMarkers []*types.MapMarker
		expectedErr     error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListMarkers(gomock.Any(), mapID).Return(expectedMarkers, nil)
			},
			expectedMarkers: expectedMarkers,
			expectedErr:     nil,
		},
		{
			name: "empty result",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListMarkers(gomock.Any(), mapID).Return([]*types.MapMarker{}, nil)
			},
			expectedMarkers: []*types.MapMarker{},
			expectedErr:     nil,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListMarkers(gomock.Any(), mapID).Return(nil, dbErr)
			},
			expectedMarkers: nil,
			expectedErr:     dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			markers, err := newTestService(mockStorage).ListMarkers(context.Background(), mapID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(markers) != len(tc.expectedMarkers) {
				t.Errorf("expected %d markers, got %d", len(tc.expectedMarkers), len(markers))
			}
		})
	}
}

func TestService_CreateMarker(t *testing.T) {
	marker := &types.MapMarker{Name: "Neverwinter", MapID: "overworld", Latitude: 12.5, Longitude: -3.25}
	created := &types.MapMarker{ID: "marker-1", Name: "Neverwinter", MapID: "overworld", Latitude: 12.5, Longitude: -3.25}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateMarker(gomock.Any(), marker).Return(created, nil)
			},
			expectedErr: nil,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateMarker(gomock.Any(), marker).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			result, err := newTestService(mockStorage).CreateMarker(context.Background(), marker)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.ID != created.ID {
				t.Errorf("expected id %s, got %s", created.ID, result.ID)
			}
		})
	}
}

func TestService_DeleteMarker(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteMarker(gomock.Any(), "marker-1").Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteMarker(gomock.Any(), "marker-1").Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			err := newTestService(mockStorage).DeleteMarker(context.Background(), "marker-1")

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
