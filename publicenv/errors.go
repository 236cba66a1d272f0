// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-public-env/publicenv/schema"
)

var (
	// ErrServerOnly is returned by [Env.Read] when it runs in a browser.
	ErrServerOnly = errors.New("publicenv: server-only API called in a browser context")

	// ErrUnserializable is returned by [New] when the resolved values cannot
	// be encoded as JSON.
	ErrUnserializable = errors.New("publicenv: values are not JSON-serializable")

	// ErrUnknownPhase is returned when PUBLICENV_PHASE holds an unknown value.
	ErrUnknownPhase = errors.New("publicenv: unknown phase")

	// ErrUnknownDynamicRendering is returned by [ParseDynamicRendering].
	ErrUnknownDynamicRendering = errors.New("publicenv: dynamic rendering must be \"auto\" or \"manual\"")

	// ErrNoInstallScript is returned by [ParsePayload] when the input holds no
	// install script.
	ErrNoInstallScript = errors.New("publicenv: no install script found")
)

const validationHeader = "❌ Invalid environment variables found:"

// ValidationError reports every key that failed schema validation.
type ValidationError struct {
	Issues []schema.Issue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(validationHeader)
	for _, issue := range e.Issues {
		variable := issue.Path.String()
		if variable == "" {
			variable = "configuration"
		}
		b.WriteString("\n- Invalid variable [")
		b.WriteString(variable)
		b.WriteString("]: ")
		b.WriteString(issue.Message)
	}
	return b.String()
}
