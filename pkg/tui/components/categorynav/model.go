// Package categorynav renders the sidebar navigation menu: the category →
// subcategory structure mirroring the grouped catalog. Activating an entry
// emits an explicit navigation event; the synchronizer calls back into
// SetCurrent to keep the highlighted entry in step with the content pane
// without re-emitting.
package categorynav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/GLADI8R/landscape2/pkg/anchor"
	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

type row struct {
	category    string
	subcategory string // empty for category header rows
	anchor      string
	count       int
}

func (r row) selectable() bool { return r.subcategory != "" }

// Model is the navigation menu component.
type Model struct {
	rows   []row
	cursor int
	scroll int

	width   int
	height  int
	focused bool
	current string

	id events.ComponentID
	th theme.NavTheme
}

// NewModel constructs an empty menu.
func NewModel(th theme.NavTheme) *Model {
	return &Model{
		cursor: -1,
		id:     events.ComponentID("categorynav"),
		th:     th,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetMenu replaces the rendered menu. counts maps section anchors to their
// item totals and may be nil. The cursor is clamped onto the nearest
// selectable row.
func (m *Model) SetMenu(menu catalog.CardMenu, counts map[string]int) {
	m.rows = m.rows[:0]
	for _, cat := range menu {
		m.rows = append(m.rows, row{category: cat.Name})
		for _, sub := range cat.Subcategories {
			id := anchor.ForSection(cat.Name, sub)
			m.rows = append(m.rows, row{
				category:    cat.Name,
				subcategory: sub,
				anchor:      id,
				count:       counts[id],
			})
		}
	}
	if m.cursor >= len(m.rows) || m.cursor < 0 || !m.rowSelectable(m.cursor) {
		m.cursor = m.firstSelectable()
	}
	m.clampScroll()
}

// SetSize updates the menu dimensions.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 24
	}
	if height <= 0 {
		height = 10
	}
	m.width = width
	m.height = height
	m.clampScroll()
}

// Focus marks the menu as the active pane.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur marks the menu as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// SetCurrent highlights the entry for the synchronized section and scrolls
// it into the visible region using the nearest-edge strategy. Entries the
// current grouping no longer contains are ignored. This never emits
// navigation events.
func (m *Model) SetCurrent(anchorID string) {
	idx := m.indexOf(anchorID)
	if idx < 0 {
		return
	}
	m.current = m.rows[idx].anchor
	m.cursor = idx
	m.scrollIntoView(idx)
}

// Current returns the highlighted section anchor.
func (m *Model) Current() string { return m.current }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses for menu navigation.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "pgup":
			m.moveCursor(-m.height)
		case "pgdown":
			m.moveCursor(m.height)
		case "home", "g":
			if idx := m.firstSelectable(); idx >= 0 {
				m.cursor = idx
				m.scrollIntoView(idx)
			}
		case "end", "G":
			if idx := m.lastSelectable(); idx >= 0 {
				m.cursor = idx
				m.scrollIntoView(idx)
			}
		case "enter", " ":
			if m.rowSelectable(m.cursor) {
				return m, events.NavigateCmd(m.id, m.rows[m.cursor].anchor)
			}
		}
	}
	return m, nil
}

// View renders the visible slice of the menu.
func (m *Model) View() string {
	if m.height <= 0 {
		return ""
	}
	lines := make([]string, 0, m.height)
	for idx := m.scroll; idx < len(m.rows) && len(lines) < m.height; idx++ {
		lines = append(lines, m.renderRow(idx))
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderRow(idx int) string {
	r := m.rows[idx]
	if !r.selectable() {
		return m.th.Category.MaxWidth(m.width).Render(r.category)
	}
	caret := "  "
	if m.focused && idx == m.cursor {
		caret = "> "
	}
	label := r.subcategory
	if r.count > 0 {
		label = fmt.Sprintf("%s (%d)", r.subcategory, r.count)
	}
	style := m.th.Subcategory
	if r.anchor == m.current {
		style = m.th.Current
	}
	return style.MaxWidth(m.width).Render(caret + label)
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		m.cursor = -1
		return
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	idx := m.cursor
	for ; delta > 0; delta-- {
		next := m.nextSelectable(idx, step)
		if next < 0 {
			break
		}
		idx = next
	}
	if idx >= 0 {
		m.cursor = idx
		m.scrollIntoView(idx)
	}
}

func (m *Model) nextSelectable(from, step int) int {
	for idx := from + step; idx >= 0 && idx < len(m.rows); idx += step {
		if m.rows[idx].selectable() {
			return idx
		}
	}
	return -1
}

func (m *Model) firstSelectable() int {
	return m.nextSelectable(-1, 1)
}

func (m *Model) lastSelectable() int {
	return m.nextSelectable(len(m.rows), -1)
}

func (m *Model) rowSelectable(idx int) bool {
	return idx >= 0 && idx < len(m.rows) && m.rows[idx].selectable()
}

func (m *Model) indexOf(anchorID string) int {
	for idx, r := range m.rows {
		if r.selectable() && anchor.Match(r.anchor, anchorID) {
			return idx
		}
	}
	return -1
}

// scrollIntoView moves the viewport the minimal distance that makes the row
// visible: rows above the viewport align to the top edge, rows below align
// to the bottom edge.
func (m *Model) scrollIntoView(idx int) {
	if m.height <= 0 {
		return
	}
	if idx < m.scroll {
		m.scroll = idx
	} else if idx >= m.scroll+m.height {
		m.scroll = idx - m.height + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	max := len(m.rows) - m.height
	if max < 0 {
		max = 0
	}
	if m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
