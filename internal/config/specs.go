// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// AuthMode selects the authenticator, one of "local_fake" or "entra"
	AuthMode     string `envconfig:"auth_mode" default:"entra"`
	AuthIssuer   string `envconfig:"auth_issuer"`
	AuthAudience string `envconfig:"auth_audience"`
	AuthJWKSURL  string `envconfig:"auth_jwks_url"`

	// AuthzMode selects the role source, one of "static" or "blob"
	AuthzMode     string `envconfig:"authz_mode" default:"blob"`
	AuthzRolePath string `envconfig:"authz_role_path" default:"users/roles.json"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	BlobDataPath string `envconfig:"blob_data_path" default:"./data"`
}
