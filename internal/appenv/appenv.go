// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appenv defines the public environment of the demo application.
package appenv

import (
	"errors"

	"github.com/MKhiriev/go-public-env/publicenv"
	"github.com/MKhiriev/go-public-env/publicenv/schema"
)

// Keys of the public environment.
const (
	AppName    = "PUBLIC_APP_NAME"
	AppVersion = "PUBLIC_APP_VERSION"
	Hello      = "PUBLIC_HELLO"
	APIURL     = "PUBLIC_API_URL"
	MaxItems   = "PUBLIC_MAX_ITEMS"
	Debug      = "PUBLIC_DEBUG"
	Theme      = "PUBLIC_THEME"
)

// Schema is the shape every public value is checked against.
func Schema(z *schema.Z) schema.Shape {
	return schema.Shape{
		schema.Key(AppName, z.String().NonEmpty()),
		schema.Key(AppVersion, z.String().Matches("semver")),
		schema.Key(Hello, z.String()),
		schema.Key(APIURL, z.Optional(z.String().URL())),
		schema.Key(MaxItems, z.Default(z.Number().Int().Min(1).Max(1000), 20)),
		schema.Key(Debug, z.Default(z.BoolString(), false)),
		schema.Key(Theme, z.Default(z.Enum("light", "dark", "system"), "system")),
		schema.Check(func(values map[string]any) error {
			if debug, _ := values[Debug].(bool); debug {
				if _, ok := values[APIURL]; !ok {
					return errors.New(Debug + " requires " + APIURL)
				}
			}
			return nil
		}),
	}
}

// New resolves values against [Schema].
func New(values publicenv.Values, opts ...publicenv.Option) (*publicenv.Env, error) {
	return publicenv.New(values, append([]publicenv.Option{publicenv.WithSchema(Schema)}, opts...)...)
}
