package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GLADI8R/landscape2/pkg/commands/options"
	"github.com/GLADI8R/landscape2/pkg/runner/explore"
)

func addExplore(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	anchor := ""

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "open the interactive landscape explorer",
		Example: `
landscape explore
landscape explore --anchor app-definition-and-development/database
landscape explore --data ./landscape.json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(so)
			if err != nil {
				return err
			}
			e := explore.Explore{Source: src, Anchor: anchor}
			return e.Do(context.Background())
		},
	}

	options.AddSourceArgs(cmd, so)
	cmd.Flags().StringVar(&anchor, "anchor", "",
		`Open scrolled to a section, example: --anchor="runtime/container-runtime".`)

	topLevel.AddCommand(cmd)
}
