// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-public-env/internal/mock"
	"github.com/MKhiriev/go-public-env/publicenv/schema"
)

type recordingCacheControl struct {
	noStore     int
	connections int
}

func (r *recordingCacheControl) NoStore()    { r.noStore++ }
func (r *recordingCacheControl) Connection() { r.connections++ }

func appSchema(z *schema.Z) schema.Shape {
	return schema.Shape{
		schema.Key("NODE_ENV", z.Enum("development", "production")),
		schema.Key("PORT", z.Number()),
	}
}

func newRuntimeEnv(t *testing.T, values Values, opts ...Option) *Env {
	t.Helper()
	e, err := New(values, append([]Option{WithPhase(PhaseRuntime)}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestRead_PassThroughWithoutSchema(t *testing.T) {
	values := Values{
		"API_URL": "https://api.example.com",
		"PORT":    "3000",
		"NESTED":  map[string]any{"ENABLED": true, "RATIO": 0.5},
	}

	e := newRuntimeEnv(t, values)
	snap, err := e.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any(values), snap.Map())
}

func TestRead_ValidatedAndCoerced(t *testing.T) {
	e := newRuntimeEnv(t,
		Values{"NODE_ENV": "development", "PORT": "3000", "EXTRA": "dropped"},
		WithSchema(appSchema),
	)

	snap, err := e.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"NODE_ENV": "development", "PORT": float64(3000)}, snap.Map())
}

func TestRead_FailsInBrowser(t *testing.T) {
	e := newRuntimeEnv(t, Values{"API_URL": "test"})
	e.inBrowser = func() bool { return true }

	_, err := e.Read(context.Background())

	assert.ErrorIs(t, err, ErrServerOnly)
	assert.Equal(t, "publicenv: server-only API called in a browser context", err.Error())
}

func TestNew_ValidationFailureListsEveryField(t *testing.T) {
	_, err := New(
		Values{"NODE_ENV": "invalid", "PORT": "not-a-number"},
		WithPhase(PhaseRuntime),
		WithSchema(appSchema),
	)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Issues, 2)
	assert.Equal(t, `❌ Invalid environment variables found:
- Invalid variable [NODE_ENV]: Invalid option: expected one of "development"|"production"
- Invalid variable [PORT]: Invalid input: expected number, received NaN`, err.Error())
}

func TestNew_RootIssueNamedConfiguration(t *testing.T) {
	_, err := New(
		Values{"A": "1"},
		WithPhase(PhaseRuntime),
		WithSchema(func(z *schema.Z) schema.Shape {
			return schema.Shape{
				schema.Key("A", z.String()),
				schema.Check(func(map[string]any) error { return errors.New("always wrong") }),
			}
		}),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "- Invalid variable [configuration]: always wrong")
}

func TestNew_OptionalFields(t *testing.T) {
	e := newRuntimeEnv(t, Values{"REQUIRED_VAR": "value"}, WithSchema(func(z *schema.Z) schema.Shape {
		return schema.Shape{
			schema.Key("REQUIRED_VAR", z.String()),
			schema.Key("OPTIONAL_VAR", z.Optional(z.String())),
		}
	}))

	snap, err := e.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"REQUIRED_VAR": "value"}, snap.Map())
}

func TestNew_BuildPhaseSkipsValidation(t *testing.T) {
	values := Values{"NODE_ENV": "invalid", "PORT": "not-a-number"}

	e, err := New(values, WithPhase(PhaseBuild), WithSchema(appSchema))

	require.NoError(t, err)
	snap, err := e.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any(values), snap.Map())
	assert.Equal(t, PhaseBuild, e.Phase())
}

func TestNew_ValidateAtBuildStep(t *testing.T) {
	_, err := New(
		Values{"NODE_ENV": "invalid", "PORT": "1"},
		WithPhase(PhaseBuild),
		WithValidateAtBuildStep(true),
		WithSchema(appSchema),
	)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Issues, 1)
}

func TestNew_PhaseFromEnvironment(t *testing.T) {
	t.Setenv("PUBLICENV_PHASE", "build")

	e, err := New(Values{"NODE_ENV": "invalid"}, WithSchema(appSchema))

	require.NoError(t, err)
	assert.Equal(t, PhaseBuild, e.Phase())
}

func TestNew_UnknownPhase(t *testing.T) {
	t.Setenv("PUBLICENV_PHASE", "staging")

	_, err := New(Values{})

	assert.ErrorIs(t, err, ErrUnknownPhase)
}

func TestNew_UnknownDynamicRendering(t *testing.T) {
	_, err := New(Values{}, WithPhase(PhaseRuntime), WithDynamicRendering("sometimes"))

	assert.ErrorIs(t, err, ErrUnknownDynamicRendering)
}

func TestNew_Unserializable(t *testing.T) {
	_, err := New(Values{"CH": make(chan int)}, WithPhase(PhaseRuntime))

	assert.ErrorIs(t, err, ErrUnserializable)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Values{"PORT": "x"}, WithPhase(PhaseRuntime), WithSchema(appSchema))
	})
}

func TestSnapshot_IsolatedFromInputAndCallers(t *testing.T) {
	nested := map[string]any{"K": "original"}
	values := Values{"NESTED": nested, "LIST": []any{"a"}}
	e := newRuntimeEnv(t, values)

	nested["K"] = "mutated"
	values["NEW"] = "added"

	snap, err := e.Read(context.Background())
	require.NoError(t, err)

	m := snap.Map()
	m["NESTED"].(map[string]any)["K"] = "mutated again"
	m["LIST"].([]any)[0] = "b"

	again, err := e.Read(context.Background())
	require.NoError(t, err)
	got, _ := again.Get("NESTED")
	assert.Equal(t, map[string]any{"K": "original"}, got)
	list, _ := again.Get("LIST")
	assert.Equal(t, []any{"a"}, list)
	_, hasNew := again.Get("NEW")
	assert.False(t, hasNew)
}

func TestRead_EmptySnapshot(t *testing.T) {
	e := newRuntimeEnv(t, nil)

	snap, err := e.Read(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.IsEmpty())
	assert.Equal(t, map[string]any{}, snap.Map())
	assert.Equal(t, "{}", string(e.Payload()))
}

func TestRead_DynamicRenderingSignals(t *testing.T) {
	tests := []struct {
		name        string
		mode        DynamicRendering
		wantNoStore int
	}{
		{name: "auto signals no-store", mode: DynamicAuto, wantNoStore: 1},
		{name: "manual stays silent", mode: DynamicManual, wantNoStore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := &recordingCacheControl{}
			ctx := WithCacheControl(context.Background(), cc)
			e := newRuntimeEnv(t, Values{"A": "1"}, WithDynamicRendering(tt.mode))

			_, err := e.Read(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNoStore, cc.noStore)
			assert.Equal(t, tt.mode, e.DynamicRendering())
		})
	}
}

func TestRead_WithoutCacheControlInContext(t *testing.T) {
	e := newRuntimeEnv(t, Values{"A": "1"})

	assert.NotPanics(t, func() {
		_, _ = e.Read(context.Background())
	})
}

func TestReadAsync(t *testing.T) {
	t.Run("signals connection", func(t *testing.T) {
		cc := &recordingCacheControl{}
		ctx := WithCacheControl(context.Background(), cc)
		e := newRuntimeEnv(t, Values{"A": "1"})

		snap, err := e.ReadAsync(ctx)

		require.NoError(t, err)
		assert.Equal(t, "1", snap.String("A"))
		assert.Equal(t, 1, cc.noStore)
		assert.Equal(t, 1, cc.connections)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e := newRuntimeEnv(t, Values{"A": "1"})

		_, err := e.ReadAsync(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("browser context", func(t *testing.T) {
		e := newRuntimeEnv(t, Values{"A": "1"})
		e.inBrowser = func() bool { return true }

		_, err := e.ReadAsync(context.Background())

		assert.ErrorIs(t, err, ErrServerOnly)
	})
}

func TestMount_RegistersEmitterWithHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := mock.NewMockHost(ctrl)
	cc := &recordingCacheControl{}
	ctx := WithCacheControl(context.Background(), cc)
	e := newRuntimeEnv(t, Values{"API_URL": "https://api.example.com", "PORT": float64(3000)})

	var registered func() template.HTML
	host.EXPECT().ServerInsertedHTML(gomock.Any()).DoAndReturn(func(fn func() template.HTML) {
		registered = fn
	})

	e.Mount(ctx, host, Props{Nonce: "abc"})

	require.NotNil(t, registered)
	assert.Equal(t, 1, cc.noStore)
	assert.Equal(t,
		template.HTML(`<script type="text/javascript" nonce="abc">`+string(ScriptContent([]byte(`{"API_URL":"https://api.example.com","PORT":3000}`)))+`</script>`),
		registered())
	assert.Empty(t, registered())
}

func TestMount_EachMountGetsFreshState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := mock.NewMockHost(ctrl)
	e := newRuntimeEnv(t, Values{"A": "1"}, WithDynamicRendering(DynamicManual))

	var hooks []func() template.HTML
	host.EXPECT().ServerInsertedHTML(gomock.Any()).Times(2).DoAndReturn(func(fn func() template.HTML) {
		hooks = append(hooks, fn)
	})

	e.Mount(context.Background(), host, Props{})
	e.Mount(context.Background(), host, Props{})

	require.Len(t, hooks, 2)
	assert.NotEmpty(t, hooks[0]())
	assert.NotEmpty(t, hooks[1]())
}

func TestParseDynamicRendering(t *testing.T) {
	tests := []struct {
		in      string
		want    DynamicRendering
		wantErr bool
	}{
		{in: "", want: DynamicAuto},
		{in: "auto", want: DynamicAuto},
		{in: " Manual ", want: DynamicManual},
		{in: "never", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDynamicRendering(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDynamicRendering)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManualMode_NeverSignalsCacheControl(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no calls are expected on the cache control
	cc := mock.NewMockCacheControl(ctrl)
	host := mock.NewMockHost(ctrl)
	host.EXPECT().ServerInsertedHTML(gomock.Any())

	ctx := WithCacheControl(context.Background(), cc)
	e := newRuntimeEnv(t, Values{"A": "1"}, WithDynamicRendering(DynamicManual))

	_, err := e.Read(ctx)
	require.NoError(t, err)
	_, err = e.ReadAsync(ctx)
	require.NoError(t, err)
	e.Mount(ctx, host, Props{})
}

func TestAutoMode_SignalsCacheControl(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cc := mock.NewMockCacheControl(ctrl)
	gomock.InOrder(
		cc.EXPECT().NoStore(),
		cc.EXPECT().Connection(),
	)

	e := newRuntimeEnv(t, Values{"A": "1"})
	_, err := e.ReadAsync(WithCacheControl(context.Background(), cc))
	require.NoError(t, err)
}
