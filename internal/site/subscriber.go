// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package site

import (
	"context"

	"github.com/mia-platform/twinserve/internal/logger"
	"github.com/mia-platform/twinserve/internal/notify"
)

const (
	eventsLoggerName = "twinserve:site"

	RouteAccessedMessage   = "route accessed"
	StatusCodeMessage      = "status code"
	FileReadSuccessMessage = "file read successfully"
	FileReadErrorMessage   = "error reading file"
)

// SubscribeLogger records every site event. Events published with a request
// context are logged by the request logger, the others by log.
func SubscribeLogger(bus *notify.Bus, log logger.Logger) {
	fallback := log.WithName(eventsLoggerName)

	bus.Subscribe(notify.RouteAccessed, func(ctx context.Context, event notify.Event) {
		logger.FromContextOr(ctx, fallback).Info(RouteAccessedMessage, "route", event.Route)
	})
	bus.Subscribe(notify.StatusCode, func(ctx context.Context, event notify.Event) {
		logger.FromContextOr(ctx, fallback).Warn(StatusCodeMessage, "status", event.Status)
	})
	bus.Subscribe(notify.FileReadSuccess, func(ctx context.Context, event notify.Event) {
		logger.FromContextOr(ctx, fallback).Info(FileReadSuccessMessage, "path", event.Path)
	})
	bus.Subscribe(notify.FileReadError, func(ctx context.Context, event notify.Event) {
		logger.FromContextOr(ctx, fallback).Error(FileReadErrorMessage, "path", event.Path, "error", event.Err)
	})
}
