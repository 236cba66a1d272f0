// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package publicenv exposes runtime configuration to both the server and the
// browser side of a server-rendered web application without baking values into
// a build artifact.
//
// The package implements a validate-once / flush-once / read-many protocol:
//
//  1. [New] validates a raw key-value bag against an optional
//     [schema.Factory] exactly once and freezes the result into a [Snapshot].
//     Any invalid key fails construction with a [*ValidationError] that lists
//     every invalid key.
//  2. [Env.Mount] registers an [Emitter] with the page's render tree. The
//     emitter serializes the snapshot into a single script element the first
//     time the host flushes server-inserted HTML and returns nothing on every
//     later flush of the same tree.
//  3. [Env.Read] returns the snapshot to server code. Browser code reads the
//     installed global through package browser.
//
// Reads and mounts signal the host that the output must not be cached as a
// static page (see [CacheControl]) unless [DynamicManual] is selected.
//
// Values end up in every rendered page. Never put secrets into an Env.
package publicenv
