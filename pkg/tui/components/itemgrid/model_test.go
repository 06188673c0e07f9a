package itemgrid

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

func testSections() []Section {
	return []Section{
		{
			Category:    "Cloud",
			Subcategory: "Runtime",
			Items: []data.Item{
				{ID: "zeta", Name: "zeta"},
				{ID: "alpha", Name: "Alpha"},
			},
		},
		{
			Category:    "Cloud",
			Subcategory: "Storage",
			Items: []data.Item{
				{ID: "store-1", Name: "Store One"},
				{ID: "store-2", Name: "Store Two"},
			},
		},
		{
			Category:    "Observability",
			Subcategory: "Tracing",
			Items: []data.Item{
				{ID: "trace-1", Name: "Trace One"},
				{ID: "trace-2", Name: "Trace Two"},
			},
		},
	}
}

func newTestModel() *Model {
	m := NewModel(theme.Default().Grid, testSections())
	m.SetSize(40, 6)
	return m
}

// drain expands a command, flattening batches into individual messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func enteredAnchors(msgs []tea.Msg) []string {
	var anchors []string
	for _, msg := range msgs {
		if m, ok := msg.(events.SectionEnterMsg); ok {
			anchors = append(anchors, m.Section.Anchor)
		}
	}
	return anchors
}

func TestInitialScanEntersVisibleSections(t *testing.T) {
	m := newTestModel()
	m.Focus()

	// A 6-row viewport covers the first two sections; the third starts
	// below the band limit.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	got := enteredAnchors(drain(cmd))
	want := []string{"cloud/runtime", "cloud/storage"}
	if len(got) != len(want) {
		t.Fatalf("entered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entered = %v, want %v", got, want)
		}
	}
}

func TestScrollToEndEntersOnlyNewSections(t *testing.T) {
	m := newTestModel()
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // initial scan

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	got := enteredAnchors(drain(cmd))
	if len(got) != 1 || got[0] != "observability/tracing" {
		t.Fatalf("entered = %v, want [observability/tracing]", got)
	}
}

func TestScrollToAnchorSuppressesEntries(t *testing.T) {
	m := newTestModel()
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // initial scan

	m.ScrollToAnchor("observability/tracing")

	item, sec, ok := m.CurrentItem()
	if !ok {
		t.Fatalf("expected a current item")
	}
	if sec.Subcategory != "Tracing" || item.Name != "Trace One" {
		t.Fatalf("current = %q in %q", item.Name, sec.Subcategory)
	}

	// The scroll already recorded the section as in band: moving the
	// cursor afterwards must not replay its entry.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := enteredAnchors(drain(cmd)); len(got) != 0 {
		t.Fatalf("entered = %v, want none", got)
	}
}

func TestScrollToUnknownAnchorIsIgnored(t *testing.T) {
	m := newTestModel()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	before := m.scroll
	m.ScrollToAnchor("no/such-section")
	if m.scroll != before {
		t.Fatalf("scroll moved to %d for an unknown anchor", m.scroll)
	}
}

func TestSetSectionsDetachesRemovedSections(t *testing.T) {
	m := newTestModel()
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})

	m.SetSections(testSections()[:1])
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	got := enteredAnchors(drain(cmd))
	if len(got) != 1 || got[0] != "cloud/runtime" {
		t.Fatalf("entered = %v, want [cloud/runtime]", got)
	}
}

func TestItemsSortedForDisplay(t *testing.T) {
	m := newTestModel()
	m.Focus()

	item, sec, ok := m.CurrentItem()
	if !ok {
		t.Fatalf("expected a current item")
	}
	// Runtime items were supplied as [zeta, Alpha]; display order is
	// case-insensitive by name.
	if sec.Subcategory != "Runtime" || item.Name != "Alpha" {
		t.Fatalf("current = %q in %q", item.Name, sec.Subcategory)
	}
}

func TestEnterEmitsItemSelect(t *testing.T) {
	m := newTestModel()
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	var sel *events.ItemSelectMsg
	for _, msg := range drain(cmd) {
		if s, ok := msg.(events.ItemSelectMsg); ok {
			sel = &s
			break
		}
	}
	if sel == nil {
		t.Fatalf("expected an ItemSelectMsg")
	}
	if sel.Item.Name != "Alpha" || sel.Section.Anchor != "cloud/runtime" {
		t.Fatalf("select = %q in %q", sel.Item.Name, sel.Section.Anchor)
	}
}

func TestHighlightFiresOncePerItem(t *testing.T) {
	m := newTestModel()
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	first := 0
	for _, msg := range drain(cmd) {
		if _, ok := msg.(events.ItemHighlightMsg); ok {
			first++
		}
	}
	if first != 1 {
		t.Fatalf("highlights = %d, want 1", first)
	}

	// A selection on the same item must not re-announce the highlight.
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	for _, msg := range drain(cmd) {
		if _, ok := msg.(events.ItemHighlightMsg); ok {
			t.Fatalf("highlight replayed for an unchanged cursor")
		}
	}
}
