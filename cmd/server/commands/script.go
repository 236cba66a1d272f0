// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-public-env/publicenv"
)

func newScriptCommand() *cobra.Command {
	var (
		element bool
		nonce   string
		payload bool
	)

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the install script for the resolved public env",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			env, err := newEnv(cfg, log)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case payload:
				_, err = fmt.Fprintln(w, string(env.Payload()))
			case element:
				_, err = fmt.Fprintln(w, publicenv.ScriptElement(env.Payload(), nonce))
			default:
				_, err = fmt.Fprintln(w, env.Script())
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&element, "element", false, "wrap the script in a script element")
	cmd.Flags().StringVar(&nonce, "nonce", "", "nonce attribute of the script element")
	cmd.Flags().BoolVar(&payload, "json", false, "print only the JSON payload")
	cmd.MarkFlagsMutuallyExclusive("element", "json")

	return cmd
}
