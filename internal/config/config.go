// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration of the go-public-env
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON, JSONC or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the public env options and process-wide settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener, timeouts and page settings.
	Server Server `envPrefix:"SERVER_"`

	// Public holds the raw public values handed to publicenv.New: every
	// PUBLIC_* environment variable plus the "public" object of the file.
	Public map[string]any

	// FilePath is the optional path to a configuration file.
	// Env: CONFIG, flag: -c / --config
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Version is reported by /healthz and in startup logs.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ValidateAtBuildStep forces schema validation during the build phase.
	// Env: APP_VALIDATE_AT_BUILD_STEP
	ValidateAtBuildStep bool `env:"VALIDATE_AT_BUILD_STEP"`

	// DynamicRendering is "auto" or "manual".
	// Env: APP_DYNAMIC_RENDERING
	DynamicRendering string `env:"DYNAMIC_RENDERING"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single page render.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticDir, when set, is served under /static/.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// LoadingDelay is how long the /loading-test section takes to resolve.
	// Env: SERVER_LOADING_DELAY
	LoadingDelay time.Duration `env:"LOADING_DELAY"`
}

// Defaults used for fields no source sets.
const (
	DefaultHTTPAddress      = "localhost:3000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultLoadingDelay     = 2 * time.Second
	DefaultDynamicRendering = "auto"
	DefaultLogLevel         = "info"
)

// GetStructuredConfig loads, merges and validates the configuration.
// Sources are consulted in this order and the first one that sets a field
// wins:
//  1. Environment variables
//  2. Command-line flags registered on fs with [RegisterFlags]
//  3. Configuration file (path resolved from sources 1 and 2)
//  4. Defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withFile().
		withDefaults().
		build()
}
