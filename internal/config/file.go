// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the layout of the configuration file. The same
// keys are used for JSON, JSONC and YAML.
type StructuredFileConfig struct {
	App struct {
		Version             string `json:"version" yaml:"version"`
		LogLevel            string `json:"log_level" yaml:"log_level"`
		ValidateAtBuildStep bool   `json:"validate_at_build_step" yaml:"validate_at_build_step"`
		DynamicRendering    string `json:"dynamic_rendering" yaml:"dynamic_rendering"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		StaticDir       string   `json:"static_dir" yaml:"static_dir"`
		LoadingDelay    Duration `json:"loading_delay" yaml:"loading_delay"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Public map[string]any `json:"public,omitempty" yaml:"public,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}

	return &StructuredConfig{
		App: App{
			Version:             fileCfg.App.Version,
			LogLevel:            fileCfg.App.LogLevel,
			ValidateAtBuildStep: fileCfg.App.ValidateAtBuildStep,
			DynamicRendering:    fileCfg.App.DynamicRendering,
		},
		Server: Server{
			HTTPAddress:     fileCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fileCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
			StaticDir:       fileCfg.Server.StaticDir,
			LoadingDelay:    time.Duration(fileCfg.Server.LoadingDelay),
		},
		Public: fileCfg.Public,
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
