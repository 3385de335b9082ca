// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package marker

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/storage"
	"github.com/dndhub/campaign-service/internal/types"
)

// passthroughAuthz skips policy evaluation so handler behavior can be tested
// in isolation. Policy enforcement is covered in internal/authorization.
type passthroughAuthz struct{}

func (passthroughAuthz) RequireRoles(policy authorization.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func newTestRouter(service ServiceInterface) http.Handler {
	mux := chi.NewMux()
	NewAPI(service, logging.NewNoopLogger()).RegisterEndpoints(mux, passthroughAuthz{})
	return mux
}

func TestAPI_GetMarker(t *testing.T) {
	marker := &types.MapMarker{ID: "marker-1", Name: "Waterdeep", MapID: "overworld"}

	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetMarker(gomock.Any(), "marker-1").Return(marker, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetMarker(gomock.Any(), "marker-1").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetMarker(gomock.Any(), "marker-1").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/markers/marker-1", nil)
			rec := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_CreateMarker(t *testing.T) {
	created := &types.MapMarker{ID: "marker-1", Name: "Waterdeep", MapID: "overworld"}

	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: `{"name": "Waterdeep", "map_id": "overworld", "latitude": 10, "longitude": 20}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			requestBody:    `{"map_id": "overworld"}`,
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "latitude out of range",
			requestBody:    `{"name": "Waterdeep", "map_id": "overworld", "latitude": 120}`,
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate",
			requestBody: `{"name": "Waterdeep", "map_id": "overworld"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/markers", bytes.NewBufferString(tt.requestBody))
			rec := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_ListMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListMarkers(gomock.Any(), "overworld").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/markers?map_id=overworld", nil)
	rec := httptest.NewRecorder()
	newTestRouter(mockService).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	// A nil result from the service still serializes as an empty array.
	var markers []*types.MapMarker
	if err := json.NewDecoder(rec.Body).Decode(&markers); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if markers == nil || len(markers) != 0 {
		t.Errorf("expected empty marker list, got %v", markers)
	}
}

func TestAPI_DeleteMarker(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteMarker(gomock.Any(), "marker-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteMarker(gomock.Any(), "marker-1").Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/markers/marker-1", nil)
			rec := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}
