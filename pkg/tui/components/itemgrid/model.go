// Package itemgrid renders the sectioned content pane: one section per
// (category, subcategory) pair of the current grouping, items sorted for
// display at render time. The grid drives a viewband tracker with its line
// geometry and emits section-entered events whenever scrolling brings a new
// section into the visibility band, from cursor movement and programmatic
// scrolls alike.
package itemgrid

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/GLADI8R/landscape2/pkg/anchor"
	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
	"github.com/GLADI8R/landscape2/pkg/viewband"
)

// Section is one rendered (category, subcategory) group.
type Section struct {
	Category    string
	Subcategory string
	Items       []data.Item
}

// Anchor returns the section's normalized identifier.
func (s Section) Anchor() string {
	return anchor.ForSection(s.Category, s.Subcategory)
}

const (
	lineHeader = -1
	lineSpacer = -2
)

type lineInfo struct {
	section int
	kind    int // >=0 index into the section's sorted items, otherwise line constants
}

// Model is the content pane component.
type Model struct {
	sections []Section
	sorted   [][]data.Item

	lines     []lineInfo
	itemLines []int

	cursor  int // index into itemLines, -1 when empty
	scroll  int
	width   int
	height  int
	focused bool

	tracker       *viewband.Tracker
	lastHighlight string

	id events.ComponentID
	th theme.GridTheme
}

// NewModel constructs the grid with the provided sections.
func NewModel(th theme.GridTheme, sections []Section) *Model {
	m := &Model{
		cursor:  -1,
		tracker: viewband.NewTracker(viewband.DefaultBand()),
		id:      events.ComponentID("itemgrid"),
		th:      th,
	}
	m.SetSections(sections)
	return m
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetSections replaces the rendered sections. Previous band observations are
// torn down with them, so sections removed by a filter change can never fire
// entry events again. Items are ordered for display here, by
// case-insensitive name, stable for ties.
func (m *Model) SetSections(sections []Section) {
	m.sections = append(m.sections[:0:0], sections...)
	m.sorted = make([][]data.Item, len(m.sections))
	for idx := range m.sections {
		m.sorted[idx] = catalog.SortedItems(m.sections[idx].Items)
	}
	m.rebuildLines()
	m.cursor = -1
	if len(m.itemLines) > 0 {
		m.cursor = 0
	}
	m.scroll = 0
	m.lastHighlight = ""
	m.observeSections()
}

// SetSize configures the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}
	m.width = width
	m.height = height
	m.clampScroll()
}

// Focus marks the grid as the active pane.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur marks the grid as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses for navigation within the grid.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
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
			m.moveCursor(-m.pageSize())
		case "pgdown":
			m.moveCursor(m.pageSize())
		case "home", "g":
			if len(m.itemLines) > 0 {
				m.cursor = 0
				m.ensureScroll()
			}
		case "end", "G":
			if len(m.itemLines) > 0 {
				m.cursor = len(m.itemLines) - 1
				m.ensureScroll()
			}
		case "enter", " ":
			if cmd := m.selectCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	cmds = append(cmds, m.scanCmds()...)
	if cmd := m.highlightCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// View renders the visible slice of the grid.
func (m *Model) View() string {
	if m.height <= 0 {
		return ""
	}
	activeSection := m.activeSection()
	lines := make([]string, 0, m.height)
	for idx := m.scroll; idx < len(m.lines) && len(lines) < m.height; idx++ {
		lines = append(lines, m.renderLine(idx, activeSection))
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ScrollToAnchor aligns the section's header with the top of the visibility
// band. Unknown anchors (sections filtered out of the current grouping) are
// skipped silently. The scroll updates band state without emitting entry
// events: explicit navigation already owns the fragment, so the entries this
// scroll provokes would be no-ops anyway.
func (m *Model) ScrollToAnchor(anchorID string) {
	secIdx := m.sectionIndex(anchorID)
	if secIdx < 0 {
		return
	}
	headerLine := -1
	firstItem := -1
	for idx, info := range m.lines {
		if info.section != secIdx {
			continue
		}
		if info.kind == lineHeader && headerLine < 0 {
			headerLine = idx
		}
		if info.kind >= 0 {
			firstItem = idx
			break
		}
	}
	if headerLine < 0 {
		return
	}
	m.scroll = headerLine
	m.clampScroll()
	if firstItem >= 0 {
		for cursorIdx, lineIdx := range m.itemLines {
			if lineIdx == firstItem {
				m.cursor = cursorIdx
				break
			}
		}
	}
	m.tracker.Scan(m.scroll, m.height)
}

// CurrentItem returns the item under the cursor, when any.
func (m *Model) CurrentItem() (data.Item, Section, bool) {
	info, ok := m.currentLine()
	if !ok || info.kind < 0 {
		return data.Item{}, Section{}, false
	}
	return m.sorted[info.section][info.kind], m.sections[info.section], true
}

// SectionCount reports how many sections are mounted.
func (m *Model) SectionCount() int { return len(m.sections) }

func (m *Model) rebuildLines() {
	m.lines = m.lines[:0]
	m.itemLines = m.itemLines[:0]
	for si := range m.sections {
		m.lines = append(m.lines, lineInfo{section: si, kind: lineHeader})
		for ii := range m.sorted[si] {
			m.itemLines = append(m.itemLines, len(m.lines))
			m.lines = append(m.lines, lineInfo{section: si, kind: ii})
		}
		m.lines = append(m.lines, lineInfo{section: si, kind: lineSpacer})
	}
	if len(m.lines) > 0 {
		m.lines = m.lines[:len(m.lines)-1]
	}
}

// observeSections registers every section's extent with the band tracker:
// the header line through the last item line.
func (m *Model) observeSections() {
	observed := make([]viewband.Section, 0, len(m.sections))
	start := -1
	height := 0
	flush := func(si int) {
		if start < 0 {
			return
		}
		observed = append(observed, viewband.Section{
			ID:     m.sections[si].Anchor(),
			Top:    start,
			Height: height,
		})
	}
	current := -1
	for idx, info := range m.lines {
		if info.kind == lineSpacer {
			continue
		}
		if info.section != current {
			flush(current)
			current = info.section
			start = idx
			height = 0
		}
		height = idx - start + 1
	}
	flush(current)
	m.tracker.SetSections(observed)
}

func (m *Model) scanCmds() []tea.Cmd {
	entered := m.tracker.Scan(m.scroll, m.height)
	if len(entered) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(entered))
	for _, e := range entered {
		ref := m.sectionRefFor(e.ID)
		cmds = append(cmds, func() tea.Msg {
			return events.SectionEnterMsg{Component: m.id, Section: ref}
		})
	}
	return cmds
}

func (m *Model) sectionRefFor(anchorID string) events.SectionRef {
	for _, sec := range m.sections {
		if anchor.Match(sec.Anchor(), anchorID) {
			return events.SectionRef{
				Category:    sec.Category,
				Subcategory: sec.Subcategory,
				Anchor:      sec.Anchor(),
			}
		}
	}
	return events.SectionRef{Anchor: anchorID}
}

func (m *Model) sectionIndex(anchorID string) int {
	for idx, sec := range m.sections {
		if anchor.Match(sec.Anchor(), anchorID) {
			return idx
		}
	}
	return -1
}

func (m *Model) activeSection() int {
	id, ok := m.tracker.Active(m.scroll, m.height)
	if !ok {
		return -1
	}
	return m.sectionIndex(id)
}

func (m *Model) currentLine() (lineInfo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.itemLines) {
		return lineInfo{}, false
	}
	lineIdx := m.itemLines[m.cursor]
	if lineIdx < 0 || lineIdx >= len(m.lines) {
		return lineInfo{}, false
	}
	return m.lines[lineIdx], true
}

func (m *Model) moveCursor(delta int) {
	if len(m.itemLines) == 0 {
		m.cursor = -1
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.itemLines) {
		m.cursor = len(m.itemLines) - 1
	}
	m.ensureScroll()
}

func (m *Model) ensureScroll() {
	if m.height <= 0 {
		return
	}
	if _, ok := m.currentLine(); !ok {
		return
	}
	target := m.itemLines[m.cursor]
	if target < m.scroll {
		m.scroll = target
	} else if target >= m.scroll+m.height {
		m.scroll = target - m.height + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	max := len(m.lines) - m.height
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

func (m *Model) pageSize() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *Model) renderLine(idx, activeSection int) string {
	info := m.lines[idx]
	switch {
	case info.kind == lineSpacer:
		return ""
	case info.kind == lineHeader:
		sec := m.sections[info.section]
		title := fmt.Sprintf("%s ▸ %s (%d)", sec.Category, sec.Subcategory, len(sec.Items))
		style := m.th.Header
		if info.section == activeSection {
			style = m.th.ActiveHeader
		}
		return style.MaxWidth(m.width).Render(title)
	default:
		return m.renderItemLine(idx, info)
	}
}

func (m *Model) renderItemLine(idx int, info lineInfo) string {
	item := m.sorted[info.section][info.kind]
	caret := "  "
	selected := m.focused && m.cursor >= 0 && m.cursor < len(m.itemLines) && m.itemLines[m.cursor] == idx
	if selected {
		caret = m.th.Cursor.Render("→ ")
	}
	label := m.th.Item.Render(item.Name)
	meta := ""
	if item.Maturity != "" {
		meta = " " + m.th.Meta.Render("["+item.Maturity+"]")
	}
	if stars := item.Stars(); stars > 0 {
		meta += " " + m.th.Meta.Render(fmt.Sprintf("★ %d", stars))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(caret + label + meta)
}

func (m *Model) highlightCmd() tea.Cmd {
	if !m.focused {
		return nil
	}
	item, sec, ok := m.CurrentItem()
	if !ok {
		return nil
	}
	if item.ID == m.lastHighlight {
		return nil
	}
	m.lastHighlight = item.ID
	ref := events.ItemRef{ID: item.ID, Name: item.Name, Maturity: item.Maturity}
	secRef := events.SectionRef{Category: sec.Category, Subcategory: sec.Subcategory, Anchor: sec.Anchor()}
	return func() tea.Msg {
		return events.ItemHighlightMsg{Component: m.id, Section: secRef, Item: ref}
	}
}

func (m *Model) selectCmd() tea.Cmd {
	item, sec, ok := m.CurrentItem()
	if !ok {
		return nil
	}
	ref := events.ItemRef{ID: item.ID, Name: item.Name, Maturity: item.Maturity}
	secRef := events.SectionRef{Category: sec.Category, Subcategory: sec.Subcategory, Anchor: sec.Anchor()}
	return func() tea.Msg {
		return events.ItemSelectMsg{Component: m.id, Section: secRef, Item: ref}
	}
}

// SectionsFrom converts a grouped catalog into renderable sections in
// presentation order.
func SectionsFrom(grouped catalog.CategoriesData) []Section {
	var sections []Section
	for _, cat := range grouped.Categories {
		for _, sub := range cat.Subcategories {
			sections = append(sections, Section{
				Category:    cat.Name,
				Subcategory: sub.Name,
				Items:       sub.Items,
			})
		}
	}
	return sections
}
