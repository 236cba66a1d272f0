// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// PublicPrefix selects the environment variables exposed to the browser.
const PublicPrefix = "PUBLIC_"

// parseEnv populates cfg from environment variables using caarlos0/env and
// collects every PUBLIC_* variable into cfg.Public.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Public = PublicValues(os.Environ())
	return nil
}

// PublicValues returns the PUBLIC_* entries of environ ("KEY=value" pairs)
// keyed by their full name.
func PublicValues(environ []string) map[string]any {
	public := make(map[string]any)
	for k, v := range env.ToMap(environ) {
		if strings.HasPrefix(k, PublicPrefix) {
			public[k] = v
		}
	}
	return public
}
