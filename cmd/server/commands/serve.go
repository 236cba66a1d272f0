// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-public-env/internal/handler"
	"github.com/MKhiriev/go-public-env/internal/metrics"
	"github.com/MKhiriev/go-public-env/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Example: `  # Serve on the default address
  PUBLIC_APP_NAME=demo PUBLIC_APP_VERSION=1.0.0 PUBLIC_HELLO=world go-public-env serve

  # Serve with a config file and manual dynamic rendering
  go-public-env serve -c config.yaml --dynamic-rendering manual`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			env, err := newEnv(cfg, log)
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(env, *cfg, metrics.New(), log)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(handlers, cfg.Server, log)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}
}
