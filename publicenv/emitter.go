// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"html/template"
	"sync"
)

type flushState uint8

const (
	unflushed flushState = iota
	flushed
)

// Emitter writes the install script at most once. One Emitter belongs to one
// render tree; a new page render needs a new Emitter.
type Emitter struct {
	payload []byte
	nonce   string

	mu    sync.Mutex
	state flushState
}

func newEmitter(payload []byte, nonce string) *Emitter {
	return &Emitter{payload: payload, nonce: nonce}
}

// Flush returns the script element on its first call and "" afterwards.
// It is meant to be registered as a server-inserted HTML callback.
func (e *Emitter) Flush() template.HTML {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == flushed {
		return ""
	}
	e.state = flushed
	return ScriptElement(e.payload, e.nonce)
}

// Flushed reports whether the script has been emitted.
func (e *Emitter) Flushed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == flushed
}
