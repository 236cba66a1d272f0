// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-public-env/internal/config"
	"github.com/MKhiriev/go-public-env/internal/handler/http"
	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/internal/metrics"
	"github.com/MKhiriev/go-public-env/publicenv"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(env *publicenv.Env, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(env, cfg, m, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
