// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method is answered with the
// not-found document instead of chi's bare 405, so every unknown
// combination of path and method renders the same page.
//
// Only exact patterns are matched. Requests whose method is registered for
// the path are forwarded to the router.
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		if notFound == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		notFound(w, r)
	}
}
