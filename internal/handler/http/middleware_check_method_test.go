// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init.
func buildRouter(notFound http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/public-env", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("env"))
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET registered route", method: http.MethodGet, path: "/api/public-env", expectedStatus: http.StatusOK},
		{name: "POST registered route", method: http.MethodPost, path: "/healthz", expectedStatus: http.StatusAccepted},
		{name: "DELETE on GET-only route", method: http.MethodDelete, path: "/api/public-env", expectedStatus: http.StatusNotFound},
		{name: "PUT on GET and POST route", method: http.MethodPut, path: "/healthz", expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			buildRouter(nil).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_UsesNotFoundHandler(t *testing.T) {
	var called int
	router := buildRouter(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/public-env", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "missing", rr.Body.String())
	assert.Equal(t, 1, called)
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/public-env", nil))

	assert.Equal(t, "env", rr.Body.String())
}
