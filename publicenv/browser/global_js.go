// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build js && wasm

package browser

import (
	"encoding/json"
	"syscall/js"
)

type jsWindow struct {
	global js.Value
}

// DefaultGlobal returns the page's window object.
func DefaultGlobal() Window {
	return jsWindow{global: js.Global()}
}

func (w jsWindow) Lookup(name string) (map[string]any, bool) {
	v := w.global.Get(name)
	if v.IsUndefined() || v.IsNull() {
		return nil, false
	}

	text := w.global.Get("JSON").Call("stringify", v).String()
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (w jsWindow) Define(name string, value map[string]any) bool {
	if v := w.global.Get(name); !v.IsUndefined() {
		return false
	}

	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	parsed := w.global.Get("JSON").Call("parse", string(data))
	frozen := w.global.Get("Object").Call("freeze", parsed)

	descriptor := js.Global().Get("Object").New()
	descriptor.Set("value", frozen)
	descriptor.Set("enumerable", true)
	w.global.Get("Object").Call("defineProperty", w.global, name, descriptor)
	return true
}
