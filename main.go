// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/twinserve/internal/cmd"
	"github.com/mia-platform/twinserve/internal/info"
	"github.com/mia-platform/twinserve/internal/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "twinserve runs a Hello World server and a small static site server"
	appLong  = `twinserve bundles two independent HTTP programs.

	The hello command answers every request with "Hello World" and listens on
	127.0.0.1:3000 by default.

	The site command serves a few HTML pages sharing a menu fragment, their
	stylesheet and an empty favicon on 127.0.0.1:5000 by default. Every request
	is logged on the console and appended to a log file per calendar day.

	Listening addresses are configured with the HTTP_HOST and HTTP_PORT
	environment variables.`

	appExample = `# Answer every request with Hello World
	twinserve hello

	# Serve the site with verbose human readable console logs
	twinserve site --log-level DEBUG --log-format text`

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	logFormatFlagName  = "log-format"
	logFormatJSON      = "json"
	logFormatText      = "text"
	logFormatFlagUsage = "set the console log format (possible values: " + logFormatJSON + ", " + logFormatText + ")"

	versionCmdName = "version"
)

var (
	allLoggerLevels = []string{
		logger.TRACE.String(),
		logger.DEBUG.String(),
		logger.INFO.String(),
		logger.WARN.String(),
		logger.ERROR.String(),
	}
	logLevelDefaultValue = logger.INFO.String()
	logLevelFlagUsage    = "set the logging level (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel  string
	logFormat string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.StringVar(&f.logFormat, logFormatFlagName, logFormatJSON, logFormatFlagUsage)
}

// configureLogger applies the logging flags to the logger carried by cmd.
// The text format replaces the context logger with a new one writing on the
// command error stream.
func (f *rootFlags) configureLogger(cmd *cobra.Command) {
	level := logger.LevelFromString(f.logLevel)
	if !strings.EqualFold(f.logFormat, logFormatText) {
		logger.FromContext(cmd.Context()).SetLevel(level)
		return
	}

	log := logger.NewLogger(cmd.ErrOrStderr(), logger.WithTextFormat(), logger.WithLevel(level))
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
}

func main() {
	cmd := rootCmd()
	log := logger.NewLogger(cmd.ErrOrStderr())
	ctx := logger.WithContext(context.Background(), log)

	exitCode := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:     appName,
		Short:   heredoc.Doc(appShort),
		Long:    heredoc.Doc(appLong),
		Example: heredoc.Doc(appExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flag.configureLogger(cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.HelloCmd(),
		internalcmd.SiteCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
