// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-public-env/internal/config"
	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/internal/metrics"
	"github.com/MKhiriev/go-public-env/internal/render"
	"github.com/MKhiriev/go-public-env/publicenv"
)

// Handler serves the pages and endpoints of the application.
type Handler struct {
	env      *publicenv.Env
	renderer *render.Renderer
	cache    *render.Cache
	metrics  *metrics.Metrics
	cfg      config.StructuredConfig

	logger *logger.Logger
}

// NewHandler returns a handler rendering pages with env. m may be nil, in
// which case a private registry is used.
func NewHandler(env *publicenv.Env, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	h := &Handler{
		env:     env,
		cache:   render.NewCache(),
		metrics: m,
		cfg:     cfg,
		logger:  logger,
	}
	h.renderer = NewRenderer(env)

	logger.Info().
		Str("dynamic_rendering", string(env.DynamicRendering())).
		Str("phase", string(env.Phase())).
		Msg("http handler created")
	return h
}
