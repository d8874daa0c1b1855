// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps the underlying logging stack behind a consistent interface.
// It centralizes configuration, makes loggers available through context helpers
// and provides a day partitioned file writer for persisting log lines.
package logger
