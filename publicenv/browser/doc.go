// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package browser is the browser-side variant of publicenv. It reads the
// snapshot installed on window by the script that publicenv.Env.Mount
// flushes into the server-rendered page.
//
// Under GOOS=js GOARCH=wasm [DefaultGlobal] is the real window object. On
// every other target it is an empty in-memory [Window], so a [Reader] built
// on it behaves like a page that never received the install script.
package browser
