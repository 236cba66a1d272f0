// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-public-env/publicenv"
)

func setPublicEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PUBLIC_APP_NAME", "demo")
	t.Setenv("PUBLIC_APP_VERSION", "1.2.3")
	t.Setenv("PUBLIC_HELLO", "world")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("SERVER_LOADING_DELAY", "10ms")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand("test", "none", "today")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidate(t *testing.T) {
	setPublicEnv(t)

	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "public env is valid: 6 keys")
	assert.Contains(t, out, "PUBLIC_MAX_ITEMS=20")
	assert.Contains(t, out, "PUBLIC_THEME=system")
}

func TestValidate_ReportsEveryInvalidKey(t *testing.T) {
	setPublicEnv(t)
	t.Setenv("PUBLIC_APP_VERSION", "latest")
	t.Setenv("PUBLIC_MAX_ITEMS", "0")

	_, err := run(t, "validate")
	var vErr *publicenv.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "PUBLIC_APP_VERSION")
	assert.Contains(t, err.Error(), "PUBLIC_MAX_ITEMS")
}

func TestValidate_InvalidDynamicRendering(t *testing.T) {
	setPublicEnv(t)

	_, err := run(t, "validate", "--dynamic-rendering", "sometimes")
	assert.Error(t, err)
}

func TestScript(t *testing.T) {
	setPublicEnv(t)

	out, err := run(t, "script")
	require.NoError(t, err)
	assert.Equal(t, 1, publicenv.CountInstallScripts(out))
	assert.False(t, strings.HasPrefix(out, "<script"))

	out, err = run(t, "script", "--element", "--nonce", "abc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<script type="text/javascript" nonce="abc">`))

	out, err = run(t, "script", "--json")
	require.NoError(t, err)
	snapshot, err := publicenv.ParseSnapshot([]byte(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Equal(t, "world", snapshot.String("PUBLIC_HELLO"))
}

func TestExport(t *testing.T) {
	setPublicEnv(t)
	dir := t.TempDir()

	out, err := run(t, "export", "--out", dir, "--dynamic-rendering", "manual")
	require.NoError(t, err)
	assert.Contains(t, out, "written  "+filepath.Join(dir, "about", "index.html"))
	assert.Contains(t, out, "skipped  /client-test")
	assert.Contains(t, out, "skipped  /not-found-test")

	b, err := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 1, publicenv.CountInstallScripts(string(b)))
}

func TestExport_AutoModeSkipsEveryPage(t *testing.T) {
	setPublicEnv(t)
	dir := t.TempDir()

	out, err := run(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "written")
	assert.Contains(t, out, "skipped  /about")
}

func TestCheck(t *testing.T) {
	page := func(scripts int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body := "<!DOCTYPE html><html><head>" +
				strings.Repeat(string(publicenv.ScriptElement([]byte(`{"PUBLIC_HELLO":"world"}`), "")), scripts) +
				"</head><body></body></html>"
			_, _ = w.Write([]byte(body))
		}
	}

	tests := []struct {
		name    string
		scripts int
		wantErr bool
	}{
		{name: "exactly one", scripts: 1},
		{name: "missing", scripts: 0, wantErr: true},
		{name: "duplicated", scripts: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(page(tt.scripts))
			defer srv.Close()

			out, err := run(t, "check", "--url", srv.URL)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInstallScriptCount)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "1 install script, 1 keys")
		})
	}
}
