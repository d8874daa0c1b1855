// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package hello implements the fixed response program: every request, whatever
// its method or path, is answered with 200 and the same body.
package hello

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/twinserve/internal/server"
)

const (
	// Body is sent to every request.
	Body = "Hello World"

	defaultHost = "127.0.0.1"
	defaultPort = 3000
)

// DefaultConfig is the listening address used when the environment does not override it.
var DefaultConfig = server.Config{
	HTTPHost:              defaultHost,
	HTTPPort:              defaultPort,
	DisableStartupMessage: true,
}

// Routes installs the catch all handler on app.
func Routes(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString(Body)
	})
}

// NewServer returns the server for the fixed response program.
func NewServer(ctx context.Context, cfg server.Config) *server.Server {
	return server.NewServer(ctx, cfg, Routes)
}
