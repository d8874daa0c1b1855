// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package site

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/twinserve/internal/logger"
	"github.com/mia-platform/twinserve/internal/notify"
)

func TestSubscribeLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	bus := notify.NewBus()
	SubscribeLogger(bus, logger.NewLogger(buffer, logger.WithTextFormat()))

	bus.Publish(t.Context(), notify.RouteAccessedEvent("Contact"))
	bus.Publish(t.Context(), notify.StatusCodeEvent(404))
	bus.Publish(t.Context(), notify.FileReadSuccessEvent("views/contact.html"))
	bus.Publish(t.Context(), notify.FileReadErrorEvent("views/menu.html", errors.New("permission denied")))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[INFO]  "+eventsLoggerName+": "+RouteAccessedMessage+": route=Contact")
	assert.Contains(t, lines[1], "[WARN]  "+eventsLoggerName+": "+StatusCodeMessage+": status=404")
	assert.Contains(t, lines[2], FileReadSuccessMessage+": path=views/contact.html")
	assert.Contains(t, lines[3], "[ERROR] "+eventsLoggerName+": "+FileReadErrorMessage+": path=views/menu.html error=\"permission denied\"")
}

func TestSubscribeLoggerPrefersRequestLogger(t *testing.T) {
	t.Parallel()

	fallbackBuffer := new(bytes.Buffer)
	requestBuffer := new(bytes.Buffer)
	bus := notify.NewBus()
	SubscribeLogger(bus, logger.NewLogger(fallbackBuffer, logger.WithTextFormat()))

	ctx := logger.WithContext(t.Context(), logger.NewLogger(requestBuffer, logger.WithTextFormat()).WithName("request:id"))
	bus.Publish(ctx, notify.RouteAccessedEvent("About"))

	assert.Empty(t, fallbackBuffer.String())
	assert.Contains(t, requestBuffer.String(), "request:id: "+RouteAccessedMessage+": route=About")
}
