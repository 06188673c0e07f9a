package catalog

import (
	"reflect"
	"testing"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/filter"
)

func declaredOrder() []data.Category {
	return []data.Category{
		{Name: "Runtime", Subcategories: []data.Subcategory{{Name: "Containers"}, {Name: "Functions"}}},
		{Name: "Cloud", Subcategories: []data.Subcategory{{Name: "Runtime"}, {Name: "Storage"}}},
	}
}

func groupItems() []data.Item {
	return []data.Item{
		{ID: "1", Name: "Zeta", Category: "Cloud", Subcategory: "Storage", Maturity: "graduated"},
		{ID: "2", Name: "Alpha", Category: "Cloud", Subcategory: "Storage"},
		{ID: "3", Name: "Mid", Category: "Runtime", Subcategory: "Containers"},
		{ID: "4", Name: "Extra", Category: "Observability", Subcategory: "Tracing"},
	}
}

func TestGroupFollowsDeclaredOrder(t *testing.T) {
	grouped, menu, err := Group(groupItems(), declaredOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var catNames []string
	for _, cat := range grouped.Categories {
		catNames = append(catNames, cat.Name)
	}
	// Declared categories first in declared order, undeclared appended in
	// first-seen order. Empty declared subcategories are dropped.
	want := []string{"Runtime", "Cloud", "Observability"}
	if !reflect.DeepEqual(catNames, want) {
		t.Fatalf("category order = %v, want %v", catNames, want)
	}

	if len(menu) != len(grouped.Categories) {
		t.Fatalf("menu has %d categories, grouped has %d", len(menu), len(grouped.Categories))
	}
	for idx, cat := range grouped.Categories {
		if menu[idx].Name != cat.Name {
			t.Fatalf("menu[%d] = %q, grouped = %q", idx, menu[idx].Name, cat.Name)
		}
		var subs []string
		for _, sub := range cat.Subcategories {
			subs = append(subs, sub.Name)
		}
		if !reflect.DeepEqual(menu[idx].Subcategories, subs) {
			t.Fatalf("menu[%d] subcategories %v do not mirror grouped %v", idx, menu[idx].Subcategories, subs)
		}
	}
}

func TestGroupPartitionsItemsExactly(t *testing.T) {
	items := groupItems()
	grouped, _, err := Group(items, declaredOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grouped.ItemCount() != len(items) {
		t.Fatalf("grouped %d items, want %d", grouped.ItemCount(), len(items))
	}
	seen := map[string]bool{}
	for _, cat := range grouped.Categories {
		for _, sub := range cat.Subcategories {
			for _, it := range sub.Items {
				if seen[it.ID] {
					t.Fatalf("item %s grouped twice", it.ID)
				}
				seen[it.ID] = true
				if it.Category != cat.Name || it.Subcategory != sub.Name {
					t.Fatalf("item %s placed in %s/%s but declares %s/%s",
						it.ID, cat.Name, sub.Name, it.Category, it.Subcategory)
				}
			}
		}
	}
	for _, it := range items {
		if !seen[it.ID] {
			t.Fatalf("item %s missing from grouping", it.ID)
		}
	}
}

func TestGroupRejectsItemsWithoutPlacement(t *testing.T) {
	items := []data.Item{{ID: "x", Name: "X", Category: "Cloud"}}
	if _, _, err := Group(items, nil); err == nil {
		t.Fatalf("expected error for item without subcategory")
	}
}

func TestSortedItemsCaseInsensitiveStable(t *testing.T) {
	items := []data.Item{
		{ID: "1", Name: "zeta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "alpha"},
		{ID: "4", Name: "Beta"},
	}
	sorted := SortedItems(items)
	var got []string
	for _, it := range sorted {
		got = append(got, it.ID)
	}
	// "Alpha" (2) and "alpha" (3) compare equal; original order is kept.
	if !reflect.DeepEqual(got, []string{"2", "3", "4", "1"}) {
		t.Fatalf("sorted ids = %v", got)
	}
	if items[0].Name != "zeta" {
		t.Fatalf("input slice mutated")
	}
}

// End-to-end scenario: no filters renders [Alpha, Zeta]; a graduated-only
// filter leaves just Zeta.
func TestFilterThenGroupScenario(t *testing.T) {
	items := []data.Item{
		{ID: "1", Name: "Zeta", Category: "Cloud", Subcategory: "Storage", Maturity: "graduated"},
		{ID: "2", Name: "Alpha", Category: "Cloud", Subcategory: "Storage"},
	}

	grouped, _, err := Group(filter.Apply(items, filter.New(), "CNCF"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	storage := grouped.Categories[0].Subcategories[0]
	rendered := SortedItems(storage.Items)
	if rendered[0].Name != "Alpha" || rendered[1].Name != "Zeta" {
		t.Fatalf("render order = [%s, %s]", rendered[0].Name, rendered[1].Name)
	}

	f := filter.New()
	f.Add(filter.Maturity, "graduated")
	grouped, menu, err := Group(filter.Apply(items, f, "CNCF"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grouped.ItemCount() != 1 || grouped.Categories[0].Subcategories[0].Items[0].ID != "1" {
		t.Fatalf("expected only item 1 to remain: %+v", grouped)
	}
	if len(menu) != 1 || menu[0].Name != "Cloud" {
		t.Fatalf("menu should still mirror the grouped keys: %+v", menu)
	}
}
