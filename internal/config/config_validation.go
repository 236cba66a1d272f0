// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/publicenv"
)

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.ShutdownTimeout <= 0 || cfg.Server.LoadingDelay < 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := publicenv.ParseDynamicRendering(cfg.App.DynamicRendering); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDynamicRendering, cfg.App.DynamicRendering)
	}

	if cfg.App.LogLevel != "" {
		if _, err := logger.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
		}
	}

	return nil
}

// Options returns the publicenv options described by the configuration.
func (cfg *StructuredConfig) Options() []publicenv.Option {
	mode, _ := publicenv.ParseDynamicRendering(cfg.App.DynamicRendering)
	return []publicenv.Option{
		publicenv.WithValidateAtBuildStep(cfg.App.ValidateAtBuildStep),
		publicenv.WithDynamicRendering(mode),
	}
}
