package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GLADI8R/landscape2/pkg/commands/options"
	"github.com/GLADI8R/landscape2/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	fo := &options.FilterOptions{}
	showAnchors := false

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "print the category outline with item counts",
		Example: `
landscape categories
landscape categories --anchors
landscape categories --maturity graduated
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(so)
			if err != nil {
				return err
			}
			n := categories.Categories{Source: src, Filters: fo.Build(), ShowAnchors: showAnchors}
			return n.Do(context.Background())
		},
	}

	options.AddSourceArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	cmd.Flags().BoolVar(&showAnchors, "anchors", false,
		"Show the shareable anchor next to each subcategory.")

	topLevel.AddCommand(cmd)
}
