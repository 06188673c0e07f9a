package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/filter"
	"github.com/GLADI8R/landscape2/pkg/printers"
	"github.com/GLADI8R/landscape2/pkg/runner/source"
)

// Categories prints the category outline of the dataset with item counts.
type Categories struct {
	Source      *source.Source
	Filters     *filter.ActiveFilters
	ShowAnchors bool
}

func (n *Categories) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list categories, no dataset source")
	}
	ds, err := n.Source.Dataset(ctx)
	if err != nil {
		return err
	}

	matched := filter.Apply(ds.Items, n.Filters, ds.Foundation)
	grouped, _, err := catalog.Group(matched, ds.Categories)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowAnchors: n.ShowAnchors}
	fmt.Println("")
	pp.Categories(grouped)
	return nil
}
