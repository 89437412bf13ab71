// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command. version is set at build time
// and surfaced via --version.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "taskdeck",
		Short:   "To-do list backend server",
		Long:    "taskdeck serves a JSON API for managing to-do lists and their tasks:\ncreation, completion tracking, deadline queries and per-list statistics.",
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(NewServeCommand())

	return root
}
