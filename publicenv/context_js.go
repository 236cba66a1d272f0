// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build js && wasm

package publicenv

import "syscall/js"

func inBrowser() bool {
	w := js.Global().Get("window")
	return !w.IsUndefined() && !w.IsNull()
}
