package categorynav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

func testMenu() catalog.CardMenu {
	return catalog.CardMenu{
		{Name: "Cloud", Subcategories: []string{"Storage", "Runtime"}},
		{Name: "Observability", Subcategories: []string{"Tracing", "Metrics", "Logging"}},
	}
}

func newTestModel() *Model {
	m := NewModel(theme.Default().Nav)
	m.SetMenu(testMenu(), map[string]int{"cloud/storage": 3})
	m.SetSize(30, 4)
	return m
}

func TestEnterEmitsNavigate(t *testing.T) {
	m := newTestModel()
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(events.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if msg.Anchor != "cloud/storage" {
		t.Fatalf("anchor = %q", msg.Anchor)
	}
}

func TestCursorSkipsCategoryHeaders(t *testing.T) {
	m := newTestModel()
	m.Focus()

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd().(events.NavigateMsg)
	// Two moves from Storage land on Runtime, then Tracing, skipping
	// the Observability header row.
	if msg.Anchor != "observability/tracing" {
		t.Fatalf("anchor = %q", msg.Anchor)
	}
}

func TestSetCurrentScrollsNearestEdge(t *testing.T) {
	m := newTestModel()

	// Last entry is below the 4-row viewport: bottom-edge alignment.
	m.SetCurrent("observability/logging")
	if m.Current() != "observability/logging" {
		t.Fatalf("current = %q", m.Current())
	}
	wantScroll := len(m.rows) - m.height
	if m.scroll != wantScroll {
		t.Fatalf("scroll = %d, want %d", m.scroll, wantScroll)
	}

	// Back to the first entry: top-edge alignment.
	m.SetCurrent("cloud/storage")
	if m.scroll != 1 {
		t.Fatalf("scroll = %d, want 1", m.scroll)
	}

	// A visible entry does not move the viewport at all.
	before := m.scroll
	m.SetCurrent("cloud/runtime")
	if m.scroll != before {
		t.Fatalf("visible entry moved the viewport: %d -> %d", before, m.scroll)
	}
}

func TestSetCurrentIgnoresUnknownAnchor(t *testing.T) {
	m := newTestModel()
	m.SetCurrent("cloud/storage")
	m.SetCurrent("gone/section")
	if m.Current() != "cloud/storage" {
		t.Fatalf("unknown anchor mutated state: %q", m.Current())
	}
}

func TestSetCurrentAcceptsRawSectionNames(t *testing.T) {
	m := newTestModel()
	m.SetCurrent("Observability/Tracing")
	if m.Current() != "observability/tracing" {
		t.Fatalf("current = %q", m.Current())
	}
}

func TestSetMenuClampsCursorAfterRegroup(t *testing.T) {
	m := newTestModel()
	m.SetCurrent("observability/logging")

	// A filter removed everything but one category.
	m.SetMenu(catalog.CardMenu{{Name: "Cloud", Subcategories: []string{"Storage"}}}, nil)
	m.Focus()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if msg := cmd().(events.NavigateMsg); msg.Anchor != "cloud/storage" {
		t.Fatalf("anchor = %q", msg.Anchor)
	}
}
