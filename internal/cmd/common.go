// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	errUnexpectedArguments = errors.New("the command does not accept arguments")
)

// handleError will do custom print error handling based on the type of error received.
// It always returns the original error so the command ends with a non zero exit code.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errUnexpectedArguments):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}
