// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "errors"

var (
	// ErrNotFound is returned by a page to render the not-found document.
	ErrNotFound = errors.New("page not found")
	// ErrDynamicPage is reported by Export for pages that opted out of
	// static output.
	ErrDynamicPage = errors.New("page is dynamic")
)
