// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	handlerhttp "github.com/MKhiriev/go-public-env/internal/handler/http"
	"github.com/MKhiriev/go-public-env/internal/render"
	"github.com/MKhiriev/go-public-env/publicenv"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Pre-render static pages in the build phase",
		Long: `Export renders every page once in the build phase and writes the static
ones to <out>/<path>/index.html. Pages that read the public env in auto
mode, or that fail to render, are skipped and listed.

Validation is skipped unless --validate-at-build-step is set.`,
		Example: `  go-public-env export --out dist
  go-public-env export --out dist --dynamic-rendering manual`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			env, err := newEnv(cfg, log, publicenv.WithPhase(publicenv.PhaseBuild))
			if err != nil {
				return err
			}

			routes := handlerhttp.Routes(env, cfg.Server.LoadingDelay, cfg.Server.StaticDir != "")
			ctx := log.WithContext(cmd.Context())
			report, err := render.Export(ctx, handlerhttp.NewRenderer(env), routes, out)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, path := range report.Written {
				fmt.Fprintf(w, "written  %s\n", path)
			}
			skipped := make([]string, 0, len(report.Skipped))
			for path := range report.Skipped {
				skipped = append(skipped, path)
			}
			sort.Strings(skipped)
			for _, path := range skipped {
				fmt.Fprintf(w, "skipped  %s: %v\n", path, report.Skipped[path])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "out", "output directory")

	return cmd
}
