// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/twinserve/internal/server"
	"github.com/mia-platform/twinserve/internal/site"
)

const (
	viewsDirFlagName  = "views-dir"
	viewsDirFlagUsage = "Directory containing the pages, the menu fragment and the stylesheet. Overrides VIEWS_DIR."

	logsDirFlagName  = "logs-dir"
	logsDirFlagUsage = "Directory where the daily log files are appended. Overrides LOGS_DIR."
)

// siteFlags holds the flags for the "site" command.
type siteFlags struct {
	viewsDir string
	logsDir  string
}

// addFlags registers the CLI flags on cmd.
func (f *siteFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.viewsDir, viewsDirFlagName, "", viewsDirFlagUsage)
	cmd.Flags().StringVar(&f.logsDir, logsDirFlagName, "", logsDirFlagUsage)
}

// toOptions builds the site options from the environment, the parsed flags and the arguments.
func (f *siteFlags) toOptions(cmd *cobra.Command, args []string) (*siteOptions, error) {
	if len(args) > 0 {
		return nil, errUnexpectedArguments
	}

	serverConfig, err := server.LoadServerConfig(site.DefaultServerConfig)
	if err != nil {
		return nil, err
	}

	siteConfig, err := site.LoadConfig()
	if err != nil {
		return nil, err
	}

	if f.viewsDir != "" {
		siteConfig.ViewsDir = f.viewsDir
	}
	if f.logsDir != "" {
		siteConfig.LogsDir = f.logsDir
	}

	return &siteOptions{
		server:  *serverConfig,
		site:    *siteConfig,
		console: cmd.ErrOrStderr(),
	}, nil
}
