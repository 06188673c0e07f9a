// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SourceOptions captures where the dataset is loaded from.
type SourceOptions struct {
	Data    string
	URL     string
	Refresh bool
}

// AddSourceArgs wires dataset source flags on the provided command.
func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().StringVar(&o.Data, "data", "",
		"Path to a local dataset file. Overrides --url and the configured source.")
	cmd.Flags().StringVar(&o.URL, "url", "",
		"URL of a remote dataset. Fetches go through the local cache.")
	cmd.Flags().BoolVar(&o.Refresh, "refresh", false,
		"Refetch the remote dataset even when a cached copy exists.")
}
