// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-public-env/internal/config"
	"github.com/MKhiriev/go-public-env/internal/handler"
	"github.com/MKhiriev/go-public-env/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	ready           chan string
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan string, 1),
		logger:          logger,
	}, nil
}

// Run serves until ctx is done or SIGTERM, SIGINT or SIGQUIT arrives, then
// shuts down within the configured timeout.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.httpServer.listen(); err != nil {
		return err
	}
	s.logger.Info().Str("address", s.httpServer.addr()).Msg("Launching HTTP server")
	s.ready <- s.httpServer.addr()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(s.httpServer.serve)
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
