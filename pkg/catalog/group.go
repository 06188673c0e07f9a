// Package catalog groups filtered items into the ordered
// category/subcategory structure the explorer renders, plus the navigation
// menu derived from the same grouping pass.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GLADI8R/landscape2/pkg/data"
)

// SubcategoryGroup holds the items placed under one subcategory. Items are
// stored in input order; render-time ordering is applied by SortedItems.
type SubcategoryGroup struct {
	Name  string
	Items []data.Item
}

// CategoryGroup holds the non-empty subcategories of one category, in
// presentation order.
type CategoryGroup struct {
	Name          string
	Subcategories []SubcategoryGroup
}

// CategoriesData is the grouped view of one filter generation. Only
// categories and subcategories that actually contain items appear.
type CategoriesData struct {
	Categories []CategoryGroup
}

// MenuCategory lists the subcategory names of one category for navigation.
type MenuCategory struct {
	Name          string
	Subcategories []string
}

// CardMenu mirrors the key structure of CategoriesData exactly.
type CardMenu []MenuCategory

// ItemCount totals the items across all leaves.
func (d CategoriesData) ItemCount() int {
	total := 0
	for _, cat := range d.Categories {
		for _, sub := range cat.Subcategories {
			total += len(sub.Items)
		}
	}
	return total
}

// Group places every item under its own (category, subcategory) pair.
// Presentation order follows the declared category list; categories or
// subcategories that appear on items but were never declared are appended in
// first-seen order. An item missing either field is a data error and fails
// the whole grouping.
func Group(items []data.Item, declared []data.Category) (CategoriesData, CardMenu, error) {
	type bucketKey struct{ category, subcategory string }
	buckets := make(map[bucketKey][]data.Item)

	catOrder := make([]string, 0, len(declared))
	catSeen := make(map[string]bool, len(declared))
	subOrder := make(map[string][]string)
	subSeen := make(map[bucketKey]bool)

	appendCategory := func(name string) {
		if !catSeen[name] {
			catSeen[name] = true
			catOrder = append(catOrder, name)
		}
	}
	appendSubcategory := func(category, name string) {
		key := bucketKey{category, name}
		if !subSeen[key] {
			subSeen[key] = true
			subOrder[category] = append(subOrder[category], name)
		}
	}

	for _, cat := range declared {
		appendCategory(cat.Name)
		for _, sub := range cat.Subcategories {
			appendSubcategory(cat.Name, sub.Name)
		}
	}

	for _, it := range items {
		if it.Category == "" || it.Subcategory == "" {
			return CategoriesData{}, nil, fmt.Errorf("item %q: missing category or subcategory", itemLabel(it))
		}
		appendCategory(it.Category)
		appendSubcategory(it.Category, it.Subcategory)
		key := bucketKey{it.Category, it.Subcategory}
		buckets[key] = append(buckets[key], it)
	}

	var grouped CategoriesData
	var menu CardMenu
	for _, category := range catOrder {
		var catGroup CategoryGroup
		var menuCat MenuCategory
		for _, subcategory := range subOrder[category] {
			bucket := buckets[bucketKey{category, subcategory}]
			if len(bucket) == 0 {
				continue
			}
			catGroup.Subcategories = append(catGroup.Subcategories, SubcategoryGroup{
				Name:  subcategory,
				Items: bucket,
			})
			menuCat.Subcategories = append(menuCat.Subcategories, subcategory)
		}
		if len(catGroup.Subcategories) == 0 {
			continue
		}
		catGroup.Name = category
		menuCat.Name = category
		grouped.Categories = append(grouped.Categories, catGroup)
		menu = append(menu, menuCat)
	}
	return grouped, menu, nil
}

// SortedItems returns a copy ordered by case-insensitive name ascending.
// Equal names keep their original relative order.
func SortedItems(items []data.Item) []data.Item {
	out := append([]data.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func itemLabel(it data.Item) string {
	if it.Name != "" {
		return it.Name
	}
	if it.ID != "" {
		return it.ID
	}
	return "(unnamed)"
}
