// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MKhiriev/go-public-env/publicenv/schema"
)

// DynamicRendering controls whether reads and mounts opt the page out of
// static caching.
type DynamicRendering string

const (
	// DynamicAuto signals no-store on every read and mount.
	DynamicAuto DynamicRendering = "auto"
	// DynamicManual leaves caching decisions to the caller. Pages that are
	// cached statically will carry whatever values were current when they
	// were rendered.
	DynamicManual DynamicRendering = "manual"
)

// ParseDynamicRendering parses "auto" or "manual". The empty string means
// [DynamicAuto].
func ParseDynamicRendering(s string) (DynamicRendering, error) {
	switch DynamicRendering(strings.ToLower(strings.TrimSpace(s))) {
	case "", DynamicAuto:
		return DynamicAuto, nil
	case DynamicManual:
		return DynamicManual, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownDynamicRendering, s)
	}
}

// Option configures [New].
type Option func(*options)

type options struct {
	schema              schema.Factory
	validateAtBuildStep bool
	dynamicRendering    DynamicRendering
	phase               Phase
	logger              zerolog.Logger
}

func defaultOptions() options {
	return options{
		dynamicRendering: DynamicAuto,
		logger:           log.Logger,
	}
}

// WithSchema validates and transforms the raw values through the shape built
// by factory. Without a schema the raw values pass through untouched.
func WithSchema(factory schema.Factory) Option {
	return func(o *options) {
		o.schema = factory
	}
}

// WithValidateAtBuildStep also validates during the build phase. By default
// validation is skipped there because runtime values are usually absent.
func WithValidateAtBuildStep(validate bool) Option {
	return func(o *options) {
		o.validateAtBuildStep = validate
	}
}

// WithDynamicRendering selects [DynamicAuto] (default) or [DynamicManual].
func WithDynamicRendering(mode DynamicRendering) Option {
	return func(o *options) {
		o.dynamicRendering = mode
	}
}

// WithPhase overrides phase detection from PUBLICENV_PHASE.
func WithPhase(phase Phase) Option {
	return func(o *options) {
		o.phase = phase
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
