// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !(js && wasm)

package publicenv

func inBrowser() bool {
	return false
}
