// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browser

import "errors"

// ErrUnsupported is returned by [Reader.ReadAsync]. The browser has no
// asynchronous source for the snapshot; use [Reader.Read].
var ErrUnsupported = errors.New("browser: ReadAsync is not supported in the browser, use Read")
