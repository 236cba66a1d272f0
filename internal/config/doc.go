// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the server configuration.
//
// Configuration is assembled from these sources; for each field the first
// source that sets it wins:
//  1. Environment variables (APP_*, SERVER_*, CONFIG) and PUBLIC_* values
//  2. Command-line flags
//  3. JSON, JSONC or YAML config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
