package itemdetail

import (
	"strings"
	"testing"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

func fundedItem() data.Item {
	funding := int64(25000000)
	return data.Item{
		ID:                "etcd",
		Name:              "etcd",
		Category:          "Orchestration",
		Subcategory:       "Coordination",
		Maturity:          "graduated",
		MemberSubcategory: "End User Supporter",
		HomepageURL:       "https://etcd.io",
		AcceptedAt:        "2018-12-11",
		Crunchbase: &data.Crunchbase{
			Name:        "Example Corp",
			Country:     "Germany",
			CompanyType: "for_profit",
			Categories:  []string{"Databases"},
			Funding:     &funding,
		},
		Repositories: []data.Repository{
			{URL: "https://github.com/etcd-io/etcd", Primary: true, Github: &data.GithubData{Stars: 45000, License: "Apache-2.0"}},
			{URL: "https://github.com/etcd-io/bbolt", Github: &data.GithubData{Stars: 7000, License: "MIT"}},
		},
	}
}

func newTestModel() *Model {
	m := NewModel(theme.Default().Panel)
	m.SetSize(60, 30)
	return m
}

func TestViewRendersFullRecord(t *testing.T) {
	m := newTestModel()
	item := fundedItem()
	m.SetItem(&item, events.SectionRef{
		Category:    "Orchestration",
		Subcategory: "Coordination",
		Anchor:      "orchestration/coordination",
	})

	view := m.View()
	for _, want := range []string{
		"etcd",
		"graduated",
		"Orchestration / Coordination",
		"member group: End User Supporter",
		"accepted: 2018-12-11",
		"organization: Example Corp",
		"country: Germany",
		"funding: $25000000",
		"(primary)",
		"total stars: 52000",
		"licenses: Apache-2.0, MIT",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAbsentFieldsAreOmitted(t *testing.T) {
	m := newTestModel()
	item := data.Item{ID: "bare", Name: "Bare", Category: "C", Subcategory: "S"}
	m.SetItem(&item, events.SectionRef{})

	view := m.View()
	for _, forbidden := range []string{"organization:", "funding:", "homepage:", "repositories"} {
		if strings.Contains(view, forbidden) {
			t.Fatalf("view contains %q for a bare item:\n%s", forbidden, view)
		}
	}
}

func TestClearedPanelShowsPlaceholder(t *testing.T) {
	m := newTestModel()
	item := fundedItem()
	m.SetItem(&item, events.SectionRef{})
	m.SetItem(nil, events.SectionRef{})

	if m.Item() != nil {
		t.Fatalf("item not cleared")
	}
	if !strings.Contains(m.View(), "no item selected") {
		t.Fatalf("placeholder missing:\n%s", m.View())
	}
}

func TestSetItemCopiesRecord(t *testing.T) {
	m := newTestModel()
	item := fundedItem()
	m.SetItem(&item, events.SectionRef{})

	item.Name = "mutated"
	if m.Item().Name != "etcd" {
		t.Fatalf("panel shares caller memory, name = %q", m.Item().Name)
	}
}
