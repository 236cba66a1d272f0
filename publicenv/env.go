// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-public-env/publicenv/schema"
)

// Props are the attributes of the mounted component.
type Props struct {
	// Nonce is copied to the script element for Content-Security-Policy.
	Nonce string
}

// Accessor is the capability shared by the server ([*Env]) and browser
// (browser.Reader) variants.
type Accessor interface {
	Read(ctx context.Context) (Snapshot, error)
	ReadAsync(ctx context.Context) (Snapshot, error)
	Mount(ctx context.Context, host Host, props Props)
}

// Env is the server-side handle on a resolved configuration. It is immutable
// after [New] and safe for concurrent use.
type Env struct {
	snapshot         Snapshot
	payload          []byte
	dynamicRendering DynamicRendering
	phase            Phase
	logger           zerolog.Logger

	inBrowser func() bool
}

var _ Accessor = (*Env)(nil)

// New resolves values once. With a schema the values are validated and
// transformed; any invalid key makes New fail with a [*ValidationError]
// listing all of them. During the build phase validation is skipped unless
// [WithValidateAtBuildStep] is set.
func New(values Values, opts ...Option) (*Env, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mode, err := ParseDynamicRendering(string(o.dynamicRendering))
	if err != nil {
		return nil, err
	}
	o.dynamicRendering = mode

	phase := o.phase
	if phase == "" {
		detected, err := DetectPhase()
		if err != nil {
			return nil, err
		}
		phase = detected
	}

	resolved, err := validate(values, o.schema, phase == PhaseBuild, o.validateAtBuildStep)
	if err != nil {
		return nil, err
	}

	snapshot := newSnapshot(resolved)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnserializable, err)
	}

	o.logger.Debug().
		Str("phase", string(phase)).
		Str("dynamic_rendering", string(o.dynamicRendering)).
		Bool("schema", o.schema != nil).
		Int("keys", snapshot.Len()).
		Msg("public env resolved")

	return &Env{
		snapshot:         snapshot,
		payload:          payload,
		dynamicRendering: o.dynamicRendering,
		phase:            phase,
		logger:           o.logger,
		inBrowser:        inBrowser,
	}, nil
}

// MustNew is like [New] but panics on error. It suits package-level
// declarations that must fail at startup.
func MustNew(values Values, opts ...Option) *Env {
	e, err := New(values, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func validate(raw Values, factory schema.Factory, buildPhase, validateAtBuildStep bool) (map[string]any, error) {
	if factory == nil || (buildPhase && !validateAtBuildStep) {
		return raw, nil
	}

	out, err := schema.Parse(schema.Build(factory), raw)
	if err != nil {
		return nil, &ValidationError{Issues: err.Issues}
	}
	return out, nil
}

// Read returns the snapshot. It fails with [ErrServerOnly] when called in a
// browser. With [DynamicAuto] it marks the current render as not cacheable.
func (e *Env) Read(ctx context.Context) (Snapshot, error) {
	if e.inBrowser() {
		return Snapshot{}, ErrServerOnly
	}

	if e.dynamicRendering == DynamicAuto {
		NoStore(ctx)
	}

	return e.snapshot, nil
}

// ReadAsync is [Env.Read] for code that must wait for a live request: it
// honours ctx cancellation and, with [DynamicAuto], also signals
// [CacheControl.Connection].
func (e *Env) ReadAsync(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	snapshot, err := e.Read(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if e.dynamicRendering == DynamicAuto {
		Connection(ctx)
	}

	return snapshot, nil
}

// Mount registers a fresh [Emitter] with host. Call it once per render tree,
// typically from the root layout.
func (e *Env) Mount(ctx context.Context, host Host, props Props) {
	if e.dynamicRendering == DynamicAuto {
		NoStore(ctx)
	}

	host.ServerInsertedHTML(e.Emitter(props).Flush)
}

// Emitter returns a new, unflushed emitter for the snapshot.
func (e *Env) Emitter(props Props) *Emitter {
	return newEmitter(e.payload, props.Nonce)
}

// Payload returns a copy of the JSON-encoded snapshot.
func (e *Env) Payload() []byte {
	return bytes.Clone(e.payload)
}

// Script returns the install script body for the snapshot.
func (e *Env) Script() template.JS {
	return ScriptContent(e.payload)
}

// Phase reports the phase the env was resolved in.
func (e *Env) Phase() Phase {
	return e.phase
}

// DynamicRendering reports the configured mode.
func (e *Env) DynamicRendering() DynamicRendering {
	return e.dynamicRendering
}
