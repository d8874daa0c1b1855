// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testDefaults = Config{
	HTTPHost:              "127.0.0.1",
	HTTPPort:              5000,
	DisableStartupMessage: true,
}

func TestLoadEnvironmentVariables(t *testing.T) {
	t.Run("defaults are kept when nothing is set", func(t *testing.T) {
		envVars, err := LoadServerConfig(testDefaults)
		require.NoError(t, err)
		require.Equal(t, testDefaults, *envVars)
		require.Equal(t, "127.0.0.1:5000", envVars.Address())
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("HTTP_HOST", "0.0.0.0")
		t.Setenv("HTTP_PORT", "3000")
		t.Setenv("DISABLE_STARTUP_MESSAGE", "false")
		envVars, err := LoadServerConfig(testDefaults)
		require.NoError(t, err)
		require.Equal(t, 3000, envVars.HTTPPort)
		require.Equal(t, "0.0.0.0", envVars.HTTPHost)
		require.False(t, envVars.DisableStartupMessage)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "655350")
		_, err := LoadServerConfig(testDefaults)
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})

	t.Run("port not a number", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "http")
		_, err := LoadServerConfig(testDefaults)
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})
}

func TestLoadValidateEnvironmentVariables(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		config        Config
		expectedError string
	}{
		"negative port": {
			config:        Config{HTTPHost: "localhost", HTTPPort: -1},
			expectedError: "HTTP_PORT is out of valid range (1-65535)",
		},
		"port too big": {
			config:        Config{HTTPHost: "localhost", HTTPPort: 655350},
			expectedError: "HTTP_PORT is out of valid range (1-65535)",
		},
		"empty host and port": {
			config:        Config{},
			expectedError: "HTTP_HOST must not be empty, HTTP_PORT is out of valid range (1-65535)",
		},
		"valid config": {
			config: Config{HTTPHost: "localhost", HTTPPort: 3000},
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			err := validateEnvironmentVariables(&test.config)
			if test.expectedError == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrEnvVariablesNotValid)
			require.ErrorContains(t, err, test.expectedError)
		})
	}
}
