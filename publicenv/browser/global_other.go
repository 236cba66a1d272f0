// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !(js && wasm)

package browser

// DefaultGlobal returns an empty in-memory window outside the browser.
func DefaultGlobal() Window {
	return NewWindow()
}
