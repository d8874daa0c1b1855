// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	logger := NewLogger(buffer)

	logger.SetLevel(TRACE)
	namedLogger := logger.WithName("test_logger")
	namedLogger.Info("new log line for INFO level")
	logger.Trace("new log line for TRACE level")
	logger.SetLevel(DEBUG)
	logger.Debug("new log line for DEBUG level")
	namedLogger.Warn("new log line for WARN level")

	logger.SetLevel(ERROR)
	namedLogger.Warn("silenced log line for WARN level")
	logger.SetLevel(WARN)
	logger.Error("new log line for ERROR level")
	logger.Debug("silenced log line for TRACE level")

	logger.SetLevel(999) // invalid level; should default to INFO
	logger.Info("new log line for INFO level after invalid level set")
	namedLogger.Debug("silenced log line for DEBUG level after invalid level set")

	lines := strings.Split(buffer.String(), "\n")
	t.Logf("%v", lines)
	assert.Len(t, lines, 7) // 6 log lines plus 1 trailing empty line
}

func TestLoggerLevel(t *testing.T) {
	t.Parallel()

	logger := NewLogger(new(bytes.Buffer))
	assert.Equal(t, INFO, logger.Level())

	for _, level := range []Level{TRACE, DEBUG, INFO, WARN, ERROR} {
		logger.SetLevel(level)
		assert.Equal(t, level, logger.Level())
		assert.Equal(t, level, logger.WithName("named").Level())
	}

	assert.Equal(t, WARN, NewLogger(new(bytes.Buffer), WithLevel(WARN)).Level())
}

func TestTextLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	clock := func() time.Time { return time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC) }
	logger := NewLogger(buffer, WithTextFormat(), WithClock(clock)).WithName("site")

	logger.Info("route accessed", "route", "About")

	line := buffer.String()
	require.NotEmpty(t, line)
	assert.True(t, strings.HasPrefix(line, "2024-06-01T10:30:00.000Z"))
	assert.Contains(t, line, "[INFO]  site: route accessed: route=About")
	assert.NotContains(t, line, "{")
}

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRACE", TRACE.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "Level(999)", Level(999).String())

	assert.Equal(t, TRACE, LevelFromString("TRACE"))
	assert.Equal(t, DEBUG, LevelFromString("debug"))
	assert.Equal(t, INFO, LevelFromString("INFO"))
	assert.Equal(t, WARN, LevelFromString("WARN"))
	assert.Equal(t, ERROR, LevelFromString("ERROR"))
	assert.Equal(t, INFO, LevelFromString("INVALID"))
}
