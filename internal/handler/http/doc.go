// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the demo application.
//
// It wires the pages rendered through internal/render, the JSON and script
// endpoints of the public env, metrics and health checks. Cross-cutting
// concerns such as request tracing, access logging, response compression
// and the Content-Security-Policy nonce are handled by middleware in this
// package.
package http
