// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"context"
	"html/template"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptRuntime returns a JS runtime whose global object is reachable as
// window, the way it is in a page.
func newScriptRuntime(t *testing.T) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	_, err := vm.RunString(`var window = this;`)
	require.NoError(t, err)
	return vm
}

func runScript(t *testing.T, vm *goja.Runtime, script template.JS) {
	t.Helper()
	_, err := vm.RunString(string(script))
	require.NoError(t, err)
}

func eval(t *testing.T, vm *goja.Runtime, expr string) goja.Value {
	t.Helper()
	v, err := vm.RunString(expr)
	require.NoError(t, err)
	return v
}

func TestScriptContent_InstallsOnceFirstWins(t *testing.T) {
	first := newRuntimeEnv(t, Values{
		"API_URL": "https://api.example.com",
		"PORT":    float64(3000),
		"HTML":    "</script><b>",
		"NESTED":  map[string]any{"LIST": []any{"x", true}},
	})
	second := newRuntimeEnv(t, Values{"API_URL": "https://other.example.com"})

	vm := newScriptRuntime(t)
	runScript(t, vm, first.Script())
	runScript(t, vm, second.Script())
	runScript(t, vm, first.Script())

	installed := eval(t, vm, `JSON.stringify(window.__PUBLIC_ENV)`).String()
	assert.JSONEq(t, string(first.Payload()), installed)

	want, err := first.Read(context.Background())
	require.NoError(t, err)
	got, err := ParseSnapshot([]byte(installed))
	require.NoError(t, err)
	assert.Equal(t, want.Map(), got.Map())
}

func TestScriptContent_SlotIsFrozenAndEnumerable(t *testing.T) {
	vm := newScriptRuntime(t)
	runScript(t, vm, ScriptContent([]byte(`{"A":"1"}`)))

	assert.True(t, eval(t, vm, `Object.isFrozen(window.__PUBLIC_ENV)`).ToBoolean())
	assert.True(t, eval(t, vm, `Object.getOwnPropertyDescriptor(window, "__PUBLIC_ENV").enumerable`).ToBoolean())
	assert.False(t, eval(t, vm, `Object.getOwnPropertyDescriptor(window, "__PUBLIC_ENV").writable`).ToBoolean())
	assert.False(t, eval(t, vm, `Object.getOwnPropertyDescriptor(window, "__PUBLIC_ENV").configurable`).ToBoolean())
	assert.True(t, eval(t, vm, `Object.keys(window).indexOf("__PUBLIC_ENV") >= 0`).ToBoolean())

	mutation := eval(t, vm, `(function () {
		"use strict";
		try { window.__PUBLIC_ENV.A = "2"; return "mutated"; } catch (e) { return e.name; }
	})()`).String()
	assert.Equal(t, "TypeError", mutation)

	eval(t, vm, `window.__PUBLIC_ENV = {A: "3"}`)
	assert.Equal(t, "1", eval(t, vm, `window.__PUBLIC_ENV.A`).String())
}

func TestScriptContent_EmptySnapshotStillWins(t *testing.T) {
	vm := newScriptRuntime(t)
	runScript(t, vm, ScriptContent([]byte(`{}`)))
	runScript(t, vm, ScriptContent([]byte(`{"A":"1"}`)))

	assert.Equal(t, "{}", eval(t, vm, `JSON.stringify(window.__PUBLIC_ENV)`).String())
}
