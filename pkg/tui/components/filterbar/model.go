// Package filterbar renders the applied-filter chips and hosts the two-stage
// value picker: pick a filter category, then toggle one of its candidate
// values. The bar never mutates filter state itself; every toggle is emitted
// as a change event for the host to apply.
package filterbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/GLADI8R/landscape2/pkg/filter"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

type stage int

const (
	stageClosed stage = iota
	stageCategory
	stageValue
)

// CandidatesFn supplies the distinct candidate values for a category, taken
// from the unfiltered dataset.
type CandidatesFn func(filter.Category) []string

// Model is the filter bar component.
type Model struct {
	id         events.ComponentID
	th         theme.FooterTheme
	foundation string

	active     *filter.ActiveFilters
	candidates CandidatesFn

	stage    stage
	category filter.Category
	all      []string
	values   []string
	cursor   int
	search   textinput.Model

	width   int
	focused bool
}

// NewModel constructs the bar. The active set is a read view owned by the
// host; the bar reads it for chips and checkmarks only.
func NewModel(th theme.FooterTheme, foundation string, active *filter.ActiveFilters, candidates CandidatesFn) *Model {
	ti := textinput.New()
	ti.Placeholder = "type to narrow"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	ti.VirtualCursor = true

	return &Model{
		id:         events.ComponentID("filterbar"),
		th:         th,
		foundation: foundation,
		active:     active,
		candidates: candidates,
		search:     ti,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetSize configures the bar width.
func (m *Model) SetSize(width int) {
	if width <= 0 {
		width = 80
	}
	m.width = width
}

// Focus opens the category picker.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	m.stage = stageCategory
	m.cursor = 0
	return events.FocusCmd(m.id)
}

// Blur closes the picker.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.stage = stageClosed
	m.all = nil
	m.values = nil
	m.search.Blur()
	return events.BlurCmd(m.id)
}

// Open reports whether the picker is showing.
func (m *Model) Open() bool { return m.stage != stageClosed }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles picker navigation and toggles. In the value stage most
// keys feed the search input; cursor movement is arrow keys only.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused || m.stage == stageClosed {
		return m, nil
	}

	if m.stage == stageCategory {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.optionCount()-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.choose()
		case "r":
			return m, events.FilterChangeCmd(m.id, events.ChangeReset, "", "")
		}
		return m, nil
	}

	switch key.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.choose()
	case "backspace":
		if m.search.Value() == "" {
			m.stage = stageCategory
			m.all = nil
			m.values = nil
			m.cursor = m.categoryIndex()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.narrowValues()
	return m, cmd
}

// narrowValues filters the candidate list by the search text, keeping the
// cursor on a valid row.
func (m *Model) narrowValues() {
	needle := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if needle == "" {
		m.values = append(m.values[:0:0], m.all...)
	} else {
		m.values = m.values[:0]
		for _, v := range m.all {
			if strings.Contains(strings.ToLower(m.displayLabel(m.category, v)), needle) ||
				strings.Contains(strings.ToLower(v), needle) {
				m.values = append(m.values, v)
			}
		}
	}
	if m.cursor >= len(m.values) {
		m.cursor = len(m.values) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the chip bar, with the picker list above it while open.
func (m *Model) View() string {
	bar := m.chipBar()
	if m.stage == stageClosed {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.pickerView(), bar)
}

func (m *Model) optionCount() int {
	if m.stage == stageValue {
		return len(m.values)
	}
	return len(filter.Categories())
}

func (m *Model) categoryIndex() int {
	for i, c := range filter.Categories() {
		if c == m.category {
			return i
		}
	}
	return 0
}

func (m *Model) choose() tea.Cmd {
	switch m.stage {
	case stageCategory:
		cats := filter.Categories()
		if m.cursor < 0 || m.cursor >= len(cats) {
			return nil
		}
		m.category = cats[m.cursor]
		m.all = nil
		if m.candidates != nil {
			m.all = m.candidates(m.category)
		}
		m.search.SetValue("")
		m.narrowValues()
		m.stage = stageValue
		m.cursor = 0
		return m.search.Focus()
	case stageValue:
		if m.cursor < 0 || m.cursor >= len(m.values) {
			return nil
		}
		value := m.values[m.cursor]
		action := events.ChangeAdd
		if m.isActive(m.category, value) {
			action = events.ChangeRemove
		}
		return events.FilterChangeCmd(m.id, action, m.category, value)
	}
	return nil
}

func (m *Model) isActive(category filter.Category, value string) bool {
	return m.active.Has(category, value)
}

func (m *Model) pickerView() string {
	var lines []string
	switch m.stage {
	case stageCategory:
		lines = append(lines, m.th.Status.Render("filter by:"))
		for i, c := range filter.Categories() {
			marked := m.active != nil && len(m.active.Values(c)) > 0
			lines = append(lines, m.optionLine(i, string(c), marked))
		}
	case stageValue:
		lines = append(lines, m.th.Status.Render(fmt.Sprintf("%s:", m.category)))
		lines = append(lines, m.search.View())
		if len(m.values) == 0 {
			lines = append(lines, m.th.Help.Render("  (no values)"))
		}
		for i, v := range m.values {
			lines = append(lines, m.optionLine(i, m.displayLabel(m.category, v), m.isActive(m.category, v)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) optionLine(idx int, label string, marked bool) string {
	caret := "  "
	if idx == m.cursor {
		caret = "> "
	}
	mark := "   "
	if marked {
		mark = " ✓ "
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(caret + label + mark)
}

// displayLabel renders the maturity sentinel with its foundation spelled out
// instead of the raw stored value.
func (m *Model) displayLabel(category filter.Category, value string) string {
	if category == filter.Maturity && value == filter.NonFoundation(m.foundation) {
		return "non-" + strings.ToUpper(m.foundation)
	}
	return value
}

func (m *Model) chipBar() string {
	if m.active == nil || m.active.Empty() {
		return m.th.Help.MaxWidth(m.width).Render("f filter · no filters applied")
	}
	parts := make([]string, 0, m.active.Len())
	for _, c := range m.active.Categories() {
		for _, v := range m.active.Values(c) {
			// The synthetic non-foundation value is an internal marker,
			// not a user-facing filter. It never shows as a chip.
			if c == filter.Maturity && v == filter.NonFoundation(m.foundation) {
				continue
			}
			parts = append(parts, m.th.Chip.Render(fmt.Sprintf("%s:%s", c, m.displayLabel(c, v))))
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, " "))
}
