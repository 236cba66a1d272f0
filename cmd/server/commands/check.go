// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-public-env/publicenv"
)

var errInstallScriptCount = errors.New("document must contain exactly one install script")

func newCheckCommand() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a served page installs the public env exactly once",
		Example: `  go-public-env check --url http://localhost:3000/loading-test`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := resty.New().SetTimeout(timeout)

			resp, err := client.R().SetContext(cmd.Context()).Get(url)
			if err != nil {
				return fmt.Errorf("error requesting %s: %w", url, err)
			}

			body := resp.String()
			if n := publicenv.CountInstallScripts(body); n != 1 {
				return fmt.Errorf("%w: %s has %d (status %d)", errInstallScriptCount, url, n, resp.StatusCode())
			}

			payload, err := publicenv.ParsePayload(body)
			if err != nil {
				return err
			}
			snapshot, err := publicenv.ParseSnapshot(payload)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: status %d, 1 install script, %d keys\n", url, resp.StatusCode(), snapshot.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:3000/", "page to check")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	return cmd
}
