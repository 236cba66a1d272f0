// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Phase distinguishes the static generation pass from runtime serving.
type Phase string

const (
	PhaseBuild   Phase = "build"
	PhaseRuntime Phase = "runtime"
)

type phaseEnv struct {
	Phase Phase `env:"PUBLICENV_PHASE" envDefault:"runtime"`
}

// DetectPhase reads PUBLICENV_PHASE from the process environment.
func DetectPhase() (Phase, error) {
	var cfg phaseEnv
	if err := env.Parse(&cfg); err != nil {
		return "", fmt.Errorf("error reading phase from env: %w", err)
	}

	switch cfg.Phase {
	case PhaseBuild, PhaseRuntime:
		return cfg.Phase, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPhase, cfg.Phase)
	}
}
