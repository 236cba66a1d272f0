// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

//go:generate mockgen -source=host.go -destination=../internal/mock/host_mock.go -package=mock

import (
	"context"
	"html/template"
)

// Host is the part of a page renderer a component needs: a way to contribute
// markup whenever the renderer flushes streamed output. The renderer may call
// fn any number of times during a single render.
type Host interface {
	ServerInsertedHTML(fn func() template.HTML)
}

// CacheControl receives the signals that keep a render out of the static
// cache. Renderers attach one to the request context with [WithCacheControl].
type CacheControl interface {
	// NoStore marks the current output as not cacheable.
	NoStore()
	// Connection marks the current output as bound to a live request.
	Connection()
}

type cacheControlKey struct{}

// WithCacheControl returns a context carrying cc.
func WithCacheControl(ctx context.Context, cc CacheControl) context.Context {
	return context.WithValue(ctx, cacheControlKey{}, cc)
}

// NoStore forwards to the [CacheControl] carried by ctx, if any.
func NoStore(ctx context.Context) {
	if cc, ok := ctx.Value(cacheControlKey{}).(CacheControl); ok {
		cc.NoStore()
	}
}

// Connection forwards to the [CacheControl] carried by ctx, if any.
func Connection(ctx context.Context) {
	if cc, ok := ctx.Value(cacheControlKey{}).(CacheControl); ok {
		cc.Connection()
	}
}
