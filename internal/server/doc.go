// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP server shared by the twinserve programs.
// It sets up the HTTP server using the Fiber framework, configures the request
// logging middleware and lets every program install its own routes.
package server
