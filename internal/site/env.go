// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package site

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/twinserve/internal/server"
)

const (
	defaultHost = "127.0.0.1"
	defaultPort = 5000
)

var (
	// DefaultServerConfig is the listening address used when the environment does not override it.
	DefaultServerConfig = server.Config{
		HTTPHost:              defaultHost,
		HTTPPort:              defaultPort,
		DisableStartupMessage: true,
	}
)

// Config holds the directories used by the site.
type Config struct {
	ViewsDir string `env:"VIEWS_DIR" envDefault:"views"`
	LogsDir  string `env:"LOGS_DIR" envDefault:"logs"`
}

// LoadConfig reads the site directories from the environment.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", server.ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	if strings.TrimSpace(envVars.ViewsDir) == "" {
		envError = append(envError, "VIEWS_DIR must not be empty")
	}
	if strings.TrimSpace(envVars.LogsDir) == "" {
		envError = append(envError, "LOGS_DIR must not be empty")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", server.ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}
