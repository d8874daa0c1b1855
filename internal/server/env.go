// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrEnvVariablesNotValid is wrapped by every configuration loading error.
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the listening address of a server. Fields without a matching
// environment variable keep the value they had before LoadServerConfig.
type Config struct {
	HTTPHost              string `env:"HTTP_HOST"`
	HTTPPort              int    `env:"HTTP_PORT"`
	DisableStartupMessage bool   `env:"DISABLE_STARTUP_MESSAGE"`
}

// Address returns the host:port pair to listen on.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// LoadServerConfig overrides defaults with the values found in the environment.
func LoadServerConfig(defaults Config) (*Config, error) {
	envVars := defaults
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	if envVars.HTTPHost == "" {
		envError = append(envError, "HTTP_HOST must not be empty")
	}
	if envVars.HTTPPort < 1 || envVars.HTTPPort > 65535 {
		envError = append(envError, "HTTP_PORT is out of valid range (1-65535)")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}
