package printers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/data"
)

var itemsCSVHeader = []string{
	"name", "category", "subcategory", "maturity",
	"homepage_url", "repository_url", "stars", "licenses",
	"organization", "country",
}

// ItemsCSV writes the items as CSV in display order, one record per item.
// Licenses collapse into a single semicolon separated cell.
func (pp *PrettyPrint) ItemsCSV(w io.Writer, items []data.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itemsCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, it := range catalog.SortedItems(items) {
		var repoURL string
		if repo := it.PrimaryRepository(); repo != nil {
			repoURL = repo.URL
		}
		var org, country string
		if it.Crunchbase != nil {
			org = it.Crunchbase.Name
			country = it.Crunchbase.Country
		}
		record := []string{
			it.Name,
			it.Category,
			it.Subcategory,
			it.Maturity,
			it.HomepageURL,
			repoURL,
			starsCell(it),
			strings.Join(it.Licenses(), ";"),
			org,
			country,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record for %s: %w", it.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
