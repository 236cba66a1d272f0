// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render is a small server-side page renderer. A [Tree] is created
// per document; components register server-inserted-HTML hooks on it and
// the [Renderer] invokes every hook each time it flushes output: once for
// the document shell and once per streamed [Section]. Reads that must not
// be cached mark the tree dynamic, which keeps the output out of the
// [Cache] and out of [Export].
package render
