// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/dndhub/campaign-service/internal/authorization"
	"github.com/dndhub/campaign-service/internal/blob"
	"github.com/dndhub/campaign-service/internal/config"
	"github.com/dndhub/campaign-service/internal/db"
	"github.com/dndhub/campaign-service/internal/logging"
	"github.com/dndhub/campaign-service/internal/monitoring"
	"github.com/dndhub/campaign-service/internal/monitoring/prometheus"
	"github.com/dndhub/campaign-service/internal/storage"
	"github.com/dndhub/campaign-service/internal/tracing"
	"github.com/dndhub/campaign-service/pkg/authentication"
	"github.com/dndhub/campaign-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("campaign_service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	blobStore, err := blob.NewLocalBlobStore(specs.BlobDataPath, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create blob store: %v", err)
	}

	verifier, err := authentication.NewVerifier(
		context.Background(),
		specs.AuthMode,
		specs.AuthIssuer,
		specs.AuthAudience,
		specs.AuthJWKSURL,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %v", err)
	}

	roleSource, err := newRoleSource(specs, blobStore, tracer, monitor, logger)
	if err != nil {
		return err
	}
	authorizer := authorization.NewAuthorizer(roleSource, tracer, monitor, logger)

	router := web.NewRouter(
		s,
		dbClient,
		blobStore,
		verifier,
		authorizer,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// newRoleSource wires role resolution according to the configured mode. The
// static source only carries the local dev identity and exists for running
// the service without a provisioned role document.
func newRoleSource(
	specs *config.EnvSpec,
	blobStore blob.BlobInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (authorization.RoleSourceInterface, error) {
	switch specs.AuthzMode {
	case "blob":
		logger.Infof("Resolving user roles from blob document %s", specs.AuthzRolePath)
		return authorization.NewBlobRoleSource(blobStore, specs.AuthzRolePath, tracer, monitor, logger), nil
	case "static":
		logger.Warn("Using static role assignments, intended for local development only")
		return authorization.NewStaticRoleSource(map[string][]authorization.Role{
			"local-dev-oid": {authorization.RoleAdmin, authorization.RoleDM, authorization.RolePlayer},
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported authz mode: %q", specs.AuthzMode)
	}
}
