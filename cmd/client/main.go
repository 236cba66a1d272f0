// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build js && wasm

// Command client is the browser side of /client-test. It reads the
// installed public env through the browser reader and prints it into the
// page.
package main

import (
	"context"
	"encoding/json"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-public-env/internal/appenv"
	"github.com/MKhiriev/go-public-env/publicenv/browser"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger()

	snapshot, err := browser.NewReader(nil, browser.WithLogger(log)).Read(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("error reading public env")
		return
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("error encoding public env")
		return
	}

	if el := js.Global().Get("document").Call("getElementById", "wasm-env"); !el.IsNull() {
		el.Set("textContent", string(b))
	}
	log.Info().Str("hello", snapshot.String(appenv.Hello)).Int("keys", snapshot.Len()).Msg("public env read in browser")
}
