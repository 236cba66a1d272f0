// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for servers managed by this package.
type Server interface {
	// Run starts serving and blocks until ctx is cancelled, a stop signal
	// arrives or the server fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
