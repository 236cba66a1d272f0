// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"context"
	"html/template"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-public-env/publicenv"
)

// SectionFunc produces the content of a streamed section.
type SectionFunc func(ctx context.Context, t *Tree) (template.HTML, error)

type section struct {
	id       string
	fallback template.HTML
	fn       SectionFunc
}

// Tree is the state of one document render. It is safe for concurrent use
// by the sections of that render.
type Tree struct {
	mu         sync.Mutex
	nonce      string
	hooks      []func() template.HTML
	mounted    map[string]struct{}
	sections   []section
	nextID     int
	noStore    bool
	connection bool
	inserted   int
	suppressed int
}

var (
	_ publicenv.Host         = (*Tree)(nil)
	_ publicenv.CacheControl = (*Tree)(nil)
)

// NewTree returns an empty tree whose inline scripts carry nonce.
func NewTree(nonce string) *Tree {
	return &Tree{
		nonce:   nonce,
		mounted: make(map[string]struct{}),
	}
}

// Nonce returns the CSP nonce for inline scripts of this render.
func (t *Tree) Nonce() string {
	return t.nonce
}

// ServerInsertedHTML registers fn to be called on every flush.
func (t *Tree) ServerInsertedHTML(fn func() template.HTML) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, fn)
}

// NoStore marks the render as not cacheable.
func (t *Tree) NoStore() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.noStore = true
}

// Connection marks the render as bound to a live request. It implies
// NoStore.
func (t *Tree) Connection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connection = true
	t.noStore = true
}

// Dynamic reports whether anything in the tree opted out of static output.
func (t *Tree) Dynamic() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.noStore
}

// MountOnce runs fn the first time key is mounted in this tree and reports
// whether it ran. Re-rendering a layout in the same tree keeps its
// components, so their hooks are registered once.
func (t *Tree) MountOnce(key string, fn func()) bool {
	t.mu.Lock()
	if _, ok := t.mounted[key]; ok {
		t.mu.Unlock()
		return false
	}
	t.mounted[key] = struct{}{}
	t.mu.Unlock()

	fn()
	return true
}

// Defer registers a section streamed after the document shell and returns
// the placeholder to embed in the body. The placeholder shows fallback
// until the section arrives.
func (t *Tree) Defer(fallback template.HTML, fn SectionFunc) template.HTML {
	t.mu.Lock()
	id := "ps-" + strconv.Itoa(t.nextID)
	t.nextID++
	t.sections = append(t.sections, section{id: id, fallback: fallback, fn: fn})
	t.mu.Unlock()

	return template.HTML(`<div id="` + id + `">`) + fallback + template.HTML(`</div>`)
}

func (t *Tree) takeSections() []section {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.sections
	t.sections = nil
	return s
}

// flushInserted invokes every hook and concatenates their output. Hooks
// that return nothing are counted as suppressed.
func (t *Tree) flushInserted() template.HTML {
	t.mu.Lock()
	hooks := append([]func() template.HTML(nil), t.hooks...)
	t.mu.Unlock()

	var (
		b                    strings.Builder
		inserted, suppressed int
	)
	for _, fn := range hooks {
		out := fn()
		if out == "" {
			suppressed++
			continue
		}
		inserted++
		b.WriteString(string(out))
	}

	t.mu.Lock()
	t.inserted += inserted
	t.suppressed += suppressed
	t.mu.Unlock()

	return template.HTML(b.String())
}

func (t *Tree) stats() (inserted, suppressed int, connection bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inserted, t.suppressed, t.connection
}
