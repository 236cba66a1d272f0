// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

const cspHeader = "Content-Security-Policy"

type nonceKey struct{}

// withNonce generates a per-request nonce, stores it in the request context
// and allows only scripts carrying it (or served from this origin).
func withNonce(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce := newNonce()

		w.Header().Set(cspHeader, "script-src 'self' 'nonce-"+nonce+"' 'wasm-unsafe-eval'; object-src 'none'; base-uri 'none'")
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), nonceKey{}, nonce)))
	})
}

// nonceFromContext returns the nonce set by withNonce, or "".
func nonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}

func newNonce() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
