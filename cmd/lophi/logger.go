package main

import (
	"log"

	"github.com/spf13/cobra"
)

// newPipelineLogger routes the controller's stage-transition log lines
// through the command's own stderr stream, so tests can capture them via
// cmd.SetErr like any other cobra output.
func newPipelineLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "lophi: ", log.LstdFlags)
}
