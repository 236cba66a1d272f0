// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-public-env/publicenv"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the public values against the schema",
		Long: `Validate resolves the configuration and checks every PUBLIC_* value
against the schema, regardless of the phase. All invalid keys are reported
together.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			env, err := newEnv(cfg, log,
				publicenv.WithPhase(publicenv.PhaseRuntime),
				publicenv.WithValidateAtBuildStep(true),
			)
			if err != nil {
				return err
			}

			snapshot, err := env.Read(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "public env is valid: %d keys\n", snapshot.Len())
			for _, key := range snapshot.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s=%s\n", key, snapshot.String(key))
			}
			return nil
		},
	}
}
