// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-public-env/internal/logger"
)

// getPublicEnv serves the snapshot as JSON.
func (h *Handler) getPublicEnv(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.env.Read(r.Context())
	if err != nil {
		log.Err(err).Msg("error reading public env")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Err(err).Msg("error encoding public env")
	}
}

// getPublicEnvScript serves the install script as an external script. The
// script is a no-op when the inline element already installed the values.
func (h *Handler) getPublicEnvScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(h.env.Script()))
}

type healthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version,omitempty"`
	Phase            string `json:"phase"`
	DynamicRendering string `json:"dynamic_rendering"`
	CachedPages      int    `json:"cached_pages"`
}

// getHealth reports liveness and the resolved env mode.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:           "ok",
		Version:          h.cfg.App.Version,
		Phase:            string(h.env.Phase()),
		DynamicRendering: string(h.env.DynamicRendering()),
		CachedPages:      h.cache.Len(),
	})
}
