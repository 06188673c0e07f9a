package items

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/GLADI8R/landscape2/pkg/filter"
	"github.com/GLADI8R/landscape2/pkg/printers"
	"github.com/GLADI8R/landscape2/pkg/runner/source"
)

// Items lists dataset items as a table or CSV, optionally filtered.
type Items struct {
	Source  *source.Source
	Filters *filter.ActiveFilters
	Output  string
}

func (n *Items) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list items, no dataset source")
	}
	ds, err := n.Source.Dataset(ctx)
	if err != nil {
		return err
	}

	matched := filter.Apply(ds.Items, n.Filters, ds.Foundation)

	pp := printers.PrettyPrint{}
	switch n.Output {
	case "", "table":
		fmt.Println("")
		pp.Items(matched)
		if !n.Filters.Empty() {
			fmt.Printf("%d of %d items matched\n", len(matched), len(ds.Items))
		}
	case "csv":
		if err := pp.ItemsCSV(os.Stdout, matched); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q, expected table or csv", n.Output)
	}
	return nil
}
