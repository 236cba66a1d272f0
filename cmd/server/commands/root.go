// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the go-public-env command line.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-public-env/internal/appenv"
	"github.com/MKhiriev/go-public-env/internal/config"
	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/publicenv"
)

const role = "go-public-env"

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	return newRootCommand(version, commit, buildDate).ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-public-env",
		Short: "Serve pages with runtime public environment values",
		Long: `go-public-env validates PUBLIC_* values once at startup and exposes them
to server code through a snapshot and to the browser through a single inline
install script per document.

Configuration sources, first one wins:
  - environment variables (APP_*, SERVER_*, PUBLIC_*, CONFIG)
  - command-line flags
  - configuration file (.json, .jsonc, .yaml, .yml)
  - defaults`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	serveCmd := newServeCommand()
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newScriptCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}

// loadConfig reads the configuration with cmd's flags and applies the
// configured log level.
func loadConfig(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, nil, err
	}

	log := logger.NewLoggerTo(cmd.ErrOrStderr(), role)
	log.Debug().Any("config", cfg).Msg("received configs")
	return cfg, log, nil
}

// newEnv resolves the public values of cfg. extra options override the
// configured ones.
func newEnv(cfg *config.StructuredConfig, log *logger.Logger, extra ...publicenv.Option) (*publicenv.Env, error) {
	opts := append(cfg.Options(), publicenv.WithLogger(log.Logger))
	env, err := appenv.New(cfg.Public, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error resolving public env: %w", err)
	}
	return env, nil
}
