// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/twinserve/internal/logger"
)

const (
	loggerName = "twinserve:server"

	ListeningMessage    = "server listening"
	ShuttingDownMessage = "shutting down server"
)

// Server is a fiber application bound to the address of its Config.
type Server struct {
	Config

	app *fiber.App
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer creates a Server logging every request with the logger found in ctx.
// Routes match paths exactly: case and trailing slashes are significant.
// setup receives the fiber application after the logging middleware has been
// installed, so every route it registers is logged.
func NewServer(ctx context.Context, cfg Config, setup func(app *fiber.App)) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // ensure that values read from the request stay valid after the handler returns
		CaseSensitive:         true,
		StrictRouting:         true,
	})
	log := logger.FromContext(ctx)
	app.Hooks().OnListen(func(data fiber.ListenData) error {
		log.WithName(loggerName).Info(ListeningMessage, "address", net.JoinHostPort(data.Host, data.Port))
		return nil
	})
	app.Use(logger.RequestMiddlewareLogger(log, nil))

	if setup != nil {
		setup(app)
	}

	return &Server{
		Config: cfg,
		app:    app,
	}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured address and blocks until the server is stopped.
func (s *Server) Start() error {
	if err := s.app.Listen(s.Address()); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

// Stop gracefully shuts down the server, waiting for in flight requests.
func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

// StartAsync starts the server in a new goroutine, logging listen errors.
func (s *Server) StartAsync(ctx context.Context) {
	log := logger.FromContext(ctx).WithName(loggerName)
	go func() {
		if err := s.Start(); err != nil {
			log.Error(err.Error())
		}
	}()
}

// Run starts the server and blocks until ctx is done, then shuts it down.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info(ShuttingDownMessage, "address", s.Address())
		if err := s.Stop(); err != nil {
			return err
		}
		return <-errChan
	}
}
