package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GLADI8R/landscape2/pkg/commands/options"
	"github.com/GLADI8R/landscape2/pkg/runner/items"
)

func addItems(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	fo := &options.FilterOptions{}

	var output string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "list dataset items as a table or CSV",
		Example: `
landscape items
landscape items --maturity graduated
landscape items --country Germany --license Apache-2.0
landscape items --output csv > items.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(so)
			if err != nil {
				return err
			}
			n := items.Items{Source: src, Filters: fo.Build(), Output: output}
			return n.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&output, "output", "table", "output format, table or csv")

	options.AddSourceArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
