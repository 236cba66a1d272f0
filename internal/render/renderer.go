// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"context"
	"errors"
	"html"
	"html/template"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-public-env/internal/logger"
	"github.com/MKhiriev/go-public-env/publicenv"
)

// PageFunc renders the body of a page.
type PageFunc func(ctx context.Context, t *Tree) (template.HTML, error)

// Page is a routable document body.
type Page struct {
	Title  string
	Render PageFunc
}

// Layout renders the head of every document and mounts the components the
// document shares. It may run more than once for the same tree.
type Layout func(ctx context.Context, t *Tree, title string) template.HTML

// Renderer renders pages inside a layout.
type Renderer struct {
	layout   Layout
	notFound Page
	errPage  func(err error) Page
}

// RendererOption configures a [Renderer].
type RendererOption func(*Renderer)

// WithNotFound sets the page rendered when a page returns [ErrNotFound].
func WithNotFound(p Page) RendererOption {
	return func(r *Renderer) { r.notFound = p }
}

// WithErrorPage sets the page rendered when a page fails.
func WithErrorPage(fn func(err error) Page) RendererOption {
	return func(r *Renderer) { r.errPage = fn }
}

// NewRenderer returns a renderer using layout for every document.
func NewRenderer(layout Layout, opts ...RendererOption) *Renderer {
	r := &Renderer{
		layout:   layout,
		notFound: staticPage("Not Found", "<h1>404</h1><p>This page could not be found.</p>"),
		errPage: func(error) Page {
			return staticPage("Error", "<h1>500</h1><p>Something went wrong.</p>")
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func staticPage(title string, body template.HTML) Page {
	return Page{
		Title:  title,
		Render: func(context.Context, *Tree) (template.HTML, error) { return body, nil },
	}
}

// Result summarises a finished render.
type Result struct {
	Status int
	// Dynamic is true when the output must not be cached.
	Dynamic bool
	// Connection is true when a read waited for the live request.
	Connection bool
	// Inserted counts hook invocations that produced markup.
	Inserted int
	// Suppressed counts hook invocations that produced nothing.
	Suppressed int
	// Sections counts streamed sections.
	Sections int
}

// Document is a prepared render whose shell and sections have not been
// written yet.
type Document struct {
	ctx    context.Context
	tree   *Tree
	status int
	head   template.HTML
	body   template.HTML
}

// Status returns the HTTP status of the document.
func (d *Document) Status() int {
	return d.status
}

// Dynamic reports whether the document opted out of caching so far.
// Sections may still opt out while streaming.
func (d *Document) Dynamic() bool {
	return d.tree.Dynamic()
}

// Prepare runs the layout and the page on t. A page returning [ErrNotFound]
// or any other error is replaced by the not-found or error page, and the
// layout runs again on the same tree for it.
func (r *Renderer) Prepare(ctx context.Context, t *Tree, page Page) *Document {
	ctx = publicenv.WithCacheControl(ctx, t)
	log := logger.FromContext(ctx)

	doc := &Document{ctx: ctx, tree: t, status: http.StatusOK}
	doc.head = r.layout(ctx, t, page.Title)

	body, err := page.Render(ctx, t)
	if err != nil {
		fallback := r.notFound
		doc.status = http.StatusNotFound
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("page", page.Title).Msg("page render failed")
			fallback = r.errPage(err)
			doc.status = http.StatusInternalServerError
		}

		t.takeSections()
		doc.head = r.layout(ctx, t, fallback.Title)
		body, err = fallback.Render(ctx, t)
		if err != nil {
			log.Err(err).Msg("fallback page render failed")
			body = template.HTML("<h1>" + html.EscapeString(http.StatusText(doc.status)) + "</h1>")
		}
	}
	doc.body = body

	return doc
}

// Stream writes the document to w: the shell with the inserted HTML in the
// head, then every section as it resolves, each preceded by the hooks'
// output. w is flushed after each part when it is an http.Flusher.
func (d *Document) Stream(w io.Writer) (Result, error) {
	t := d.tree
	log := logger.FromContext(d.ctx)

	shell := "<!DOCTYPE html><html lang=\"en\"><head>" +
		string(d.head) +
		string(t.flushInserted()) +
		"</head><body>" +
		string(d.body)
	if err := writeFlush(w, shell); err != nil {
		return d.result(0), err
	}

	sections := t.takeSections()
	results := make(chan sectionResult, len(sections))

	var g errgroup.Group
	for _, s := range sections {
		g.Go(func() error {
			content, err := s.fn(d.ctx, t)
			if err != nil {
				log.Err(err).Str("section", s.id).Msg("section render failed")
				content = s.fallback
			}
			results <- sectionResult{id: s.id, content: content}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()

	var writeErr error
	for res := range results {
		if writeErr != nil {
			continue
		}
		chunk := string(t.flushInserted()) + sectionChunk(res, t.Nonce())
		writeErr = writeFlush(w, chunk)
	}
	if writeErr != nil {
		return d.result(len(sections)), writeErr
	}

	if err := writeFlush(w, "</body></html>"); err != nil {
		return d.result(len(sections)), err
	}

	return d.result(len(sections)), nil
}

func (d *Document) result(sections int) Result {
	inserted, suppressed, connection := d.tree.stats()
	return Result{
		Status:     d.status,
		Dynamic:    d.tree.Dynamic(),
		Connection: connection,
		Inserted:   inserted,
		Suppressed: suppressed,
		Sections:   sections,
	}
}

type sectionResult struct {
	id      string
	content template.HTML
}

const swapScript = `(function(i){var t=document.getElementById(i+"-c"),s=document.getElementById(i);s&&t&&(s.replaceChildren(t.content),t.remove())})`

func sectionChunk(res sectionResult, nonce string) string {
	return `<template id="` + res.id + `-c">` + string(res.content) + `</template>` +
		`<script nonce="` + html.EscapeString(nonce) + `">` + swapScript + `("` + res.id + `")</script>`
}

func writeFlush(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// Render prepares and streams page on a fresh tree. An http.ResponseWriter
// receives the document status before the body.
func (r *Renderer) Render(ctx context.Context, w io.Writer, nonce string, page Page) (Result, error) {
	doc := r.Prepare(ctx, NewTree(nonce), page)
	if rw, ok := w.(http.ResponseWriter); ok {
		rw.WriteHeader(doc.Status())
	}
	return doc.Stream(w)
}
