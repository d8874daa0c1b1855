// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedForHeaderKey = "x-forwarded-for"
	requestIDHeaderName   = "x-request-id"
	userAgentHeaderName   = "user-agent"

	requestLoggerName = "request"

	RequestReceivedMessage  = "request received"
	RequestCompletedMessage = "request completed"
)

// requestInfo collects the request fields shared by the received and completed log lines.
type requestInfo struct {
	Method    string `json:"method,omitempty"`
	Path      string `json:"path,omitempty"`
	Query     string `json:"query,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// responseInfo contains the items of the completed request log line.
type responseInfo struct {
	StatusCode int `json:"statusCode,omitempty"`
	Bytes      int `json:"bytes"`
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

// RequestID returns the id carried by the x-request-id header or a new random one.
func RequestID(c *fiber.Ctx) string {
	if requestID := c.Get(requestIDHeaderName); requestID != "" {
		return requestID
	}

	// Generate a random uuid string. e.g. 16c9c1f2-c001-40d3-bbfe-48857367e7b5
	requestID, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return requestID.String()
}

func newRequestInfo(c *fiber.Ctx) requestInfo {
	ip := c.Get(forwardedForHeaderKey)
	if ip == "" {
		ip = c.IP()
	}

	return requestInfo{
		Method:    c.Method(),
		Path:      c.Path(),
		Query:     string(c.Request().URI().QueryString()),
		Hostname:  removePort(c.Hostname()),
		IP:        ip,
		UserAgent: c.Get(userAgentHeaderName),
	}
}

func newResponseInfo(c *fiber.Ctx, handlerErr error) responseInfo {
	var fiberErr *fiber.Error
	if errors.As(handlerErr, &fiberErr) {
		return responseInfo{StatusCode: fiberErr.Code, Bytes: len(fiberErr.Message)}
	}

	return responseInfo{
		StatusCode: c.Response().StatusCode(),
		Bytes:      len(c.Response().Body()),
	}
}

// RequestMiddlewareLogger is a fiber middleware to log all requests.
// It logs the requested path before the request reaches any handler and, once
// the handlers are done, the response status and size with the request latency.
// Paths starting with one of excludedPrefix are not logged.
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		requestID := RequestID(c)
		log := logger.WithName(requestLoggerName + ":" + requestID)
		c.Set(requestIDHeaderName, requestID)
		c.SetUserContext(WithContext(c.UserContext(), log))

		request := newRequestInfo(c)
		log.Info(RequestReceivedMessage, "path", request.Path, "http", request)

		err := c.Next()

		log.Info(RequestCompletedMessage,
			"path", request.Path,
			"http", request,
			"response", newResponseInfo(c, err),
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}
