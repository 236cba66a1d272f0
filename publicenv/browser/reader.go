// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browser

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MKhiriev/go-public-env/publicenv"
)

// Reader reads the installed snapshot from a [Global].
type Reader struct {
	global Global
	logger zerolog.Logger
}

var _ publicenv.Accessor = (*Reader)(nil)

// Option configures a [Reader].
type Option func(*Reader)

// WithLogger sets the logger that receives the missing-flush warning.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// NewReader returns a reader over global. A nil global means [DefaultGlobal].
func NewReader(global Global, opts ...Option) *Reader {
	if global == nil {
		global = DefaultGlobal()
	}
	r := &Reader{global: global, logger: log.Logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the installed snapshot. It never fails: when the slot is
// missing it logs a warning and returns an empty snapshot.
func (r *Reader) Read(_ context.Context) (publicenv.Snapshot, error) {
	value, ok := r.global.Lookup(publicenv.GlobalName)
	if !ok {
		r.logger.Warn().
			Str("global", publicenv.GlobalName).
			Msgf("%q was not found on window. Did you forget to mount the public env component in your root layout?", publicenv.GlobalName)
		return publicenv.Snapshot{}, nil
	}

	snapshot, err := snapshotOf(value)
	if err != nil {
		r.logger.Warn().Err(err).Str("global", publicenv.GlobalName).Msg("installed public env is not a JSON object")
		return publicenv.Snapshot{}, nil
	}
	return snapshot, nil
}

// ReadAsync always fails with [ErrUnsupported].
func (r *Reader) ReadAsync(_ context.Context) (publicenv.Snapshot, error) {
	return publicenv.Snapshot{}, ErrUnsupported
}

// Mount does nothing in the browser; the server already flushed the script.
func (r *Reader) Mount(context.Context, publicenv.Host, publicenv.Props) {}

func snapshotOf(value map[string]any) (publicenv.Snapshot, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return publicenv.Snapshot{}, err
	}
	return publicenv.ParseSnapshot(data)
}
