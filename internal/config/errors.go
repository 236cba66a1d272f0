// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates missing or non-positive server
	// settings (for example, an empty address or a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDynamicRendering indicates a mode other than auto or manual.
	ErrInvalidDynamicRendering = errors.New("invalid dynamic rendering mode")
	// ErrInvalidLogLevel indicates a level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrUnsupportedFileFormat indicates a config file extension other than
	// .json, .jsonc, .yaml or .yml.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
