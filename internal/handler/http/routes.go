// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// exposition format negotiates its own compression
	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/healthz", h.getHealth)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(withNonce)

		for _, route := range Routes(h.env, h.cfg.Server.LoadingDelay, h.cfg.Server.StaticDir != "") {
			r.Get(route.Path, h.servePage(route.Path, route.Page))
		}

		r.Get("/api/public-env", h.getPublicEnv)
		r.Get("/public-env.js", h.getPublicEnvScript)

		if dir := h.cfg.Server.StaticDir; dir != "" {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
		}
	})

	notFound := withGZip(withNonce(h.servePage("not-found", missingPage))).ServeHTTP
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))

	return router
}
