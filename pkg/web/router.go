// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/blob"
	"github.com/dndhub/campaign-service/internal/db"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/storage"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/pkg/auth"
	"github.com/dndhub/campaign-service/pkg/authentication"
	"github.com/dndhub/campaign-service/pkg/character"
	"github.com/dndhub/campaign-service/pkg/homebrew"
	"github.com/dndhub/campaign-service/pkg/marker"
	"github.com/dndhub/campaign-service/pkg/metrics"
	"github.com/dndhub/campaign-service/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	blobStore blob.BlobInterface,
	verifier authentication.TokenVerifierInterface,
	authorizer authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	authnMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)
	authzMiddleware := authorization.NewMiddleware(authnMiddleware, authorizer, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	auth.NewAPI(authorizer, logger).RegisterEndpoints(router, authnMiddleware)

	markerService := marker.NewService(s, tracer, monitor, logger)
	marker.NewAPI(markerService, logger).RegisterEndpoints(router, authzMiddleware)

	characterService := character.NewService(s, tracer, monitor, logger)
	character.NewAPI(characterService, logger).RegisterEndpoints(router, authzMiddleware)

	homebrewService := homebrew.NewService(blobStore, tracer, monitor, logger)
	homebrew.NewAPI(homebrewService, logger).RegisterEndpoints(router, authzMiddleware)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
