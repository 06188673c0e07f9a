package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/data"
)

// Items prints a flat table of items in display order.
func (pp *PrettyPrint) Items(items []data.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("NAME", "CATEGORY", "SUBCATEGORY", "MATURITY", "STARS", "LICENSES")
	for _, it := range catalog.SortedItems(items) {
		table.AddRow(
			it.Name,
			it.Category,
			it.Subcategory,
			it.Maturity,
			starsCell(it),
			strings.Join(it.Licenses(), ","),
		)
	}
	fmt.Println(table)
}

func starsCell(it data.Item) string {
	stars := it.Stars()
	if stars == 0 {
		return ""
	}
	return fmt.Sprintf("%d", stars)
}
