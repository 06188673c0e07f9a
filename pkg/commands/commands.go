// Package commands assembles the landscape CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/GLADI8R/landscape2/pkg/commands/options"
	"github.com/GLADI8R/landscape2/pkg/runner/source"
	"github.com/GLADI8R/landscape2/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "landscape",
		Short: "Explore a foundation landscape from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addExplore(topLevel)
	addItems(topLevel)
	addCategories(topLevel)
	addVersion(topLevel)
}

// loadSource resolves the dataset source from flags, falling back on the
// configured defaults for anything left unset.
func loadSource(so *options.SourceOptions) (*source.Source, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	path := so.Data
	if path == "" {
		path = cfg.DataPath()
	}
	url := so.URL
	if url == "" {
		url = cfg.DataURL()
	}
	// A --data flag pins the run to the local file even when a URL is
	// configured.
	if so.Data != "" {
		url = ""
	}

	var cache *store.Cache
	if url != "" && cfg.CachePath() != "" {
		cache = store.OpenCache(cfg.CachePath())
	}
	return &source.Source{Path: path, URL: url, Refresh: so.Refresh, Cache: cache}, nil
}
