// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*StructuredConfig
	public  []map[string]any
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.Public = make(map[string]any)
	for _, layer := range b.public {
		for k, v := range layer {
			if _, ok := config.Public[k]; !ok {
				config.Public[k] = v
			}
		}
	}

	return config, config.validate()
}

func (b *configBuilder) add(cfg *StructuredConfig) {
	if len(cfg.Public) > 0 {
		b.public = append(b.public, maps.Clone(cfg.Public))
	}
	layer := *cfg
	layer.Public = nil
	b.configs = append(b.configs, &layer)
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flags, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	// the first source naming a file wins, like every other field
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(&StructuredConfig{
		App: App{
			LogLevel:         DefaultLogLevel,
			DynamicRendering: DefaultDynamicRendering,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			LoadingDelay:    DefaultLoadingDelay,
		},
	})
	return b
}
