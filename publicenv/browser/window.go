// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browser

//go:generate mockgen -source=window.go -destination=../../internal/mock/window_mock.go -package=mock

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Global looks up a value on the browser's global object.
type Global interface {
	// Lookup returns the JSON object stored under name.
	Lookup(name string) (map[string]any, bool)
}

// Window is a [Global] whose slots can be defined once.
type Window interface {
	Global
	// Define stores value under name unless the slot already exists. It
	// reports whether value was stored.
	Define(name string, value map[string]any) bool
}

type memoryWindow struct {
	mu    sync.RWMutex
	slots map[string]map[string]any
}

// NewWindow returns an empty in-memory window. Defined slots are frozen:
// lookups return copies.
func NewWindow() Window {
	return &memoryWindow{slots: make(map[string]map[string]any)}
}

func (w *memoryWindow) Lookup(name string) (map[string]any, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	v, ok := w.slots[name]
	if !ok {
		return nil, false
	}
	return deepCopy(v), true
}

func (w *memoryWindow) Define(name string, value map[string]any) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.slots[name]; exists {
		return false
	}
	w.slots[name] = deepCopy(value)
	return true
}

// deepCopy round-trips through JSON, which is the only shape a slot can hold.
func deepCopy(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(in)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// Install defines the snapshot slot from a JSON payload, mirroring the
// install script: the first install wins and later ones are no-ops.
func Install(w Window, name string, payload []byte) (bool, error) {
	var value map[string]any
	if err := json.Unmarshal(payload, &value); err != nil {
		return false, fmt.Errorf("error decoding payload: %w", err)
	}
	if value == nil {
		value = map[string]any{}
	}
	return w.Define(name, value), nil
}
