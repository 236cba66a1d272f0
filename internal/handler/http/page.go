// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/internal/render"
)

const (
	cacheHeader = "X-Cache"
	// noncePlaceholder stands in for the request nonce inside cached output.
	noncePlaceholder = "__CSP_NONCE__"
)

// servePage renders page, or serves it from the static cache when a
// previous render of route did not opt out of caching.
func (h *Handler) servePage(route string, page render.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		nonce := nonceFromContext(r.Context())

		if entry, ok := h.cache.Get(route); ok {
			h.metrics.CacheHit()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set(cacheHeader, "HIT")
			w.WriteHeader(entry.Status)
			_, _ = w.Write(stampNonce(entry.Body, noncePlaceholder, nonce))
			return
		}
		h.metrics.CacheMiss()

		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Server.RequestTimeout)
		defer cancel()

		start := time.Now()
		doc := h.renderer.Prepare(ctx, render.NewTree(nonce), page)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if doc.Dynamic() {
			w.Header().Set("Cache-Control", "no-store, must-revalidate")
		}
		w.Header().Set(cacheHeader, "MISS")
		w.WriteHeader(doc.Status())

		tee := &teeWriter{ResponseWriter: w}
		res, err := doc.Stream(tee)
		h.metrics.ObserveRender(route, res, time.Since(start))
		if err != nil {
			log.Err(err).Str("route", route).Msg("error streaming page")
			return
		}

		if h.cache.Store(route, res, stampNonce(tee.buf.Bytes(), nonce, noncePlaceholder)) {
			h.metrics.CacheStore()
			log.Debug().Str("route", route).Msg("page stored in static cache")
		}
	}
}

// stampNonce replaces the nonce attribute value from with to.
func stampNonce(body []byte, from, to string) []byte {
	if from == "" {
		return body
	}
	return bytes.ReplaceAll(body, []byte(`nonce="`+from+`"`), []byte(`nonce="`+to+`"`))
}

// teeWriter copies everything written to the response and keeps flushes
// reaching the client.
type teeWriter struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.buf.Write(b[:n])
	return n, err
}

func (w *teeWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
