// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	helloCmdUsage = "hello"
	helloCmdShort = "start the Hello World server"
	helloCmdLong  = `Start the Hello World server.
	Every request, whatever its method or path, is answered with status 200
	and the "Hello World" body.

	The listening address is read from the HTTP_HOST and HTTP_PORT environment
	variables and defaults to 127.0.0.1:3000.`

	helloCmdExample = `# Start the server on the default address
	twinserve hello

	# Start the server on another port
	HTTP_PORT=8080 twinserve hello`

	siteCmdUsage = "site"
	siteCmdShort = "start the static site server"
	siteCmdLong  = `Start the static site server.
	The server renders the index, about, contact, products and subscribe pages
	injecting the shared menu fragment, serves the stylesheet and answers the
	favicon with no content. Every other path is answered with 404.

	Log lines are written on the console and appended to a file per day inside
	the logs directory.

	The listening address is read from the HTTP_HOST and HTTP_PORT environment
	variables and defaults to 127.0.0.1:5000. The directories are read from
	VIEWS_DIR and LOGS_DIR and can be overridden with flags.`

	siteCmdExample = `# Start the server with the views in the current directory
	twinserve site

	# Start the server with custom directories
	twinserve site --views-dir /srv/site/views --logs-dir /var/log/site`
)

// HelloCmd returns the Cobra command that starts the Hello World server.
func HelloCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     helloCmdUsage,
		Short:   heredoc.Doc(helloCmdShort),
		Long:    heredoc.Doc(helloCmdLong),
		Example: heredoc.Doc(helloCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := helloOptionsFromEnv(args)
			if err != nil {
				return handleError(cmd, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := opts.execute(ctx); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	return cmd
}

// SiteCmd returns the Cobra command that starts the static site server.
func SiteCmd() *cobra.Command {
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:     siteCmdUsage,
		Short:   heredoc.Doc(siteCmdShort),
		Long:    heredoc.Doc(siteCmdLong),
		Example: heredoc.Doc(siteCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := opts.execute(ctx); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
