package options

import (
	"github.com/spf13/cobra"

	"github.com/GLADI8R/landscape2/pkg/filter"
)

// FilterOptions captures the repeatable filter flags shared by the listing
// commands. Repeating a flag ORs its values; distinct flags AND together.
type FilterOptions struct {
	Maturity     []string
	Organization []string
	Country      []string
	Industry     []string
	License      []string
	CompanyType  []string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVar(&o.Maturity, "maturity", nil,
		`Filter by maturity level, example: --maturity=graduated.`)
	cmd.Flags().StringSliceVar(&o.Organization, "organization", nil,
		"Filter by owning organization.")
	cmd.Flags().StringSliceVar(&o.Country, "country", nil,
		"Filter by organization country.")
	cmd.Flags().StringSliceVar(&o.Industry, "industry", nil,
		"Filter by organization industry.")
	cmd.Flags().StringSliceVar(&o.License, "license", nil,
		`Filter by repository license, example: --license=Apache-2.0.`)
	cmd.Flags().StringSliceVar(&o.CompanyType, "company-type", nil,
		"Filter by organization company type.")
}

// Build converts the flags into an active filter set.
func (o *FilterOptions) Build() *filter.ActiveFilters {
	f := filter.New()
	add := func(c filter.Category, values []string) {
		for _, v := range values {
			f.Add(c, v)
		}
	}
	add(filter.Maturity, o.Maturity)
	add(filter.Organization, o.Organization)
	add(filter.Country, o.Country)
	add(filter.Industry, o.Industry)
	add(filter.License, o.License)
	add(filter.CompanyType, o.CompanyType)
	return f
}
