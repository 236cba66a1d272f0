// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// GlobalName is the browser global the install script defines.
const GlobalName = "__PUBLIC_ENV"

// installer defines GlobalName once. Later executions see the existing
// property and do nothing, so duplicate script tags are harmless.
const installer = `function i(n){window.` + GlobalName +
	`||Object.defineProperty(window,"` + GlobalName +
	`",{value:Object.freeze(n),enumerable:!0})}`

const installerCall = "(" + installer + ")("

// ScriptContent returns the script body installing payload, which must be a
// JSON object produced by encoding/json.
func ScriptContent(payload []byte) template.JS {
	return template.JS(installerCall + string(payload) + ");")
}

// ScriptElement wraps [ScriptContent] in a script element. A non-empty nonce
// is emitted as the element's nonce attribute.
func ScriptElement(payload []byte, nonce string) template.HTML {
	var b strings.Builder
	b.WriteString(`<script type="text/javascript"`)
	if nonce != "" {
		b.WriteString(` nonce="`)
		b.WriteString(html.EscapeString(nonce))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(string(ScriptContent(payload)))
	b.WriteString("</script>")
	return template.HTML(b.String())
}

// CountInstallScripts reports how many install scripts document contains.
func CountInstallScripts(document string) int {
	return strings.Count(document, installerCall)
}

// ParsePayload extracts the JSON payload of the first install script found in
// s, which may be a bare script body or a whole document.
func ParsePayload(s string) ([]byte, error) {
	start := strings.Index(s, installerCall)
	if start < 0 {
		return nil, ErrNoInstallScript
	}
	rest := s[start+len(installerCall):]

	dec := json.NewDecoder(strings.NewReader(rest))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding install script payload: %w", err)
	}
	tail := strings.TrimLeft(rest[dec.InputOffset():], " \t\r\n")
	if !strings.HasPrefix(tail, ");") {
		return nil, fmt.Errorf("%w: payload is not followed by a call terminator", ErrNoInstallScript)
	}

	return bytes.Clone(raw), nil
}
