// Package filter implements the multi-criteria predicate applied to the
// catalog. Filtering composes one optional value set per category into a
// single exclusion decision; optional item fields exclude on absence, they
// are never errors.
package filter

import (
	"sort"
	"strings"

	"github.com/GLADI8R/landscape2/pkg/data"
)

// Category identifies one filterable dimension of an item.
type Category string

const (
	Organization Category = "organization"
	Country      Category = "country"
	Industry     Category = "industry"
	License      Category = "license"
	CompanyType  Category = "company-type"
	Maturity     Category = "maturity"
)

// Categories returns the closed set of filter categories in display order.
func Categories() []Category {
	return []Category{Maturity, Organization, Country, Industry, License, CompanyType}
}

// NonFoundation returns the synthetic maturity value representing members
// without a maturity level, e.g. "non-CNCF".
func NonFoundation(foundation string) string {
	return "non-" + foundation
}

// ActiveFilters maps categories to non-empty accepted value sets. A category
// with no values imposes no constraint. Insertion order is preserved so the
// applied-filter display stays stable.
type ActiveFilters struct {
	order  []Category
	values map[Category][]string
}

// New returns an empty filter set.
func New() *ActiveFilters {
	return &ActiveFilters{values: make(map[Category][]string)}
}

// Add accepts a value for the category. Duplicate values are ignored.
func (f *ActiveFilters) Add(c Category, v string) {
	if v == "" {
		return
	}
	for _, existing := range f.values[c] {
		if existing == v {
			return
		}
	}
	if len(f.values[c]) == 0 {
		f.order = append(f.order, c)
	}
	f.values[c] = append(f.values[c], v)
}

// Remove drops a value from the category, releasing the constraint entirely
// when its value set empties.
func (f *ActiveFilters) Remove(c Category, v string) {
	vals := f.values[c]
	for idx, existing := range vals {
		if existing != v {
			continue
		}
		vals = append(vals[:idx], vals[idx+1:]...)
		break
	}
	if len(vals) == 0 {
		delete(f.values, c)
		for idx, active := range f.order {
			if active == c {
				f.order = append(f.order[:idx], f.order[idx+1:]...)
				break
			}
		}
		return
	}
	f.values[c] = vals
}

// Reset drops all constraints.
func (f *ActiveFilters) Reset() {
	f.order = nil
	f.values = make(map[Category][]string)
}

// Empty reports whether no constraint is active.
func (f *ActiveFilters) Empty() bool {
	return f == nil || len(f.order) == 0
}

// Has reports whether the category accepts the value.
func (f *ActiveFilters) Has(c Category, v string) bool {
	if f == nil {
		return false
	}
	for _, existing := range f.values[c] {
		if existing == v {
			return true
		}
	}
	return false
}

// Values returns the accepted values for a category in insertion order.
func (f *ActiveFilters) Values(c Category) []string {
	if f == nil {
		return nil
	}
	return f.values[c]
}

// Categories returns the active categories in insertion order.
func (f *ActiveFilters) Categories() []Category {
	if f == nil {
		return nil
	}
	return f.order
}

// Len counts the active (category, value) constraints.
func (f *ActiveFilters) Len() int {
	if f == nil {
		return 0
	}
	total := 0
	for _, c := range f.order {
		total += len(f.values[c])
	}
	return total
}

// Apply returns the items accepted by every active category, preserving the
// input order. With no active filters the input is returned unchanged.
func Apply(items []data.Item, f *ActiveFilters, foundation string) []data.Item {
	if f.Empty() {
		return items
	}
	out := make([]data.Item, 0, len(items))
	for _, it := range items {
		if matches(&it, f, foundation) {
			out = append(out, it)
		}
	}
	return out
}

// matches applies the logical AND across all active categories.
func matches(it *data.Item, f *ActiveFilters, foundation string) bool {
	for _, c := range f.order {
		if !matchCategory(it, c, f.values[c], foundation) {
			return false
		}
	}
	return true
}

func matchCategory(it *data.Item, c Category, accepted []string, foundation string) bool {
	switch c {
	case Organization:
		return it.Crunchbase != nil && it.Crunchbase.Name != "" && contains(accepted, it.Crunchbase.Name)
	case Country:
		return it.Crunchbase != nil && it.Crunchbase.Country != "" && contains(accepted, it.Crunchbase.Country)
	case Industry:
		return it.Crunchbase != nil && intersects(accepted, it.Crunchbase.Categories)
	case License:
		return intersects(accepted, it.Licenses())
	case CompanyType:
		return it.Crunchbase != nil && it.Crunchbase.CompanyType != "" && contains(accepted, it.Crunchbase.CompanyType)
	case Maturity:
		if it.Maturity == "" {
			return contains(accepted, NonFoundation(foundation))
		}
		return contains(accepted, it.Maturity)
	}
	// Unknown categories impose no constraint.
	return true
}

func contains(accepted []string, v string) bool {
	for _, a := range accepted {
		if a == v {
			return true
		}
	}
	return false
}

func intersects(accepted, values []string) bool {
	for _, v := range values {
		if contains(accepted, v) {
			return true
		}
	}
	return false
}

// CandidateValues returns the distinct values a category can filter on for
// the given items, sorted case-insensitively. For the maturity category the
// synthetic non-foundation value is included when any item lacks a maturity
// level.
func CandidateValues(items []data.Item, c Category, foundation string) []string {
	seen := map[string]bool{}
	var values []string
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		values = append(values, v)
	}
	for idx := range items {
		it := &items[idx]
		switch c {
		case Organization:
			if it.Crunchbase != nil {
				add(it.Crunchbase.Name)
			}
		case Country:
			if it.Crunchbase != nil {
				add(it.Crunchbase.Country)
			}
		case Industry:
			if it.Crunchbase != nil {
				for _, v := range it.Crunchbase.Categories {
					add(v)
				}
			}
		case License:
			for _, v := range it.Licenses() {
				add(v)
			}
		case CompanyType:
			if it.Crunchbase != nil {
				add(it.Crunchbase.CompanyType)
			}
		case Maturity:
			if it.Maturity == "" {
				add(NonFoundation(foundation))
			} else {
				add(it.Maturity)
			}
		}
	}
	sort.Slice(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values
}
