// Package app hosts the Bubble Tea program for the landscape explorer TUI.
// It owns the filter state, the grouped snapshot the panes render from, and
// the synchronizer that keeps the menu, the content pane and the shareable
// anchor agreeing about which section is active.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/GLADI8R/landscape2/pkg/catalog"
	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/filter"
	"github.com/GLADI8R/landscape2/pkg/navsync"
	"github.com/GLADI8R/landscape2/pkg/store"
	"github.com/GLADI8R/landscape2/pkg/tui/components/categorynav"
	"github.com/GLADI8R/landscape2/pkg/tui/components/filterbar"
	"github.com/GLADI8R/landscape2/pkg/tui/components/itemdetail"
	"github.com/GLADI8R/landscape2/pkg/tui/components/itemgrid"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeDetail
	modeHelp
)

type focusPane int

const (
	focusNav focusPane = iota
	focusGrid
)

const appComponentID = events.ComponentID("app")

const (
	navMinWidth = 24
	navMaxWidth = 36
	gutterWidth = 2
	footerRows  = 2
)

var helpLines = []string{
	"tab        switch between menu and grid",
	"j/k, ↑/↓   move cursor",
	"g/G        jump to start / end",
	"enter      open item (grid) or jump to section (menu)",
	"f          filter picker",
	"r          reset filters (inside picker)",
	"esc        close panel / picker",
	"?          toggle this help",
	"q          quit",
}

// Model contains the explorer UI state.
type Model struct {
	dataset *data.Dataset
	filters *filter.ActiveFilters

	grouped catalog.CategoriesData
	menu    catalog.CardMenu

	sync     *navsync.Synchronizer
	fragment string

	nav    *categorynav.Model
	grid   *itemgrid.Model
	bar    *filterbar.Model
	detail *itemdetail.Model

	mode  mode
	focus focusPane

	width  int
	height int

	initialAnchor string

	watchPath   string
	reload      func(context.Context) (*data.Dataset, error)
	watchCh     <-chan struct{}
	watchCancel context.CancelFunc

	theme theme.Theme
	err   error
}

// Option configures the model.
type Option func(*Model)

// WithAnchor seeds the explorer with a deep link: the view opens scrolled to
// the section the anchor names.
func WithAnchor(anchor string) Option {
	return func(m *Model) { m.initialAnchor = anchor }
}

// WithDatasetWatch reloads the dataset through load whenever the file at
// path changes on disk. Active filters and the current anchor survive
// the swap.
func WithDatasetWatch(path string, load func(context.Context) (*data.Dataset, error)) Option {
	return func(m *Model) {
		m.watchPath = path
		m.reload = load
	}
}

// New creates the explorer model for a loaded dataset.
func New(dataset *data.Dataset, opts ...Option) (*Model, error) {
	th := theme.Default()
	m := &Model{
		dataset: dataset,
		filters: filter.New(),
		theme:   th,
		focus:   focusGrid,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.nav = categorynav.NewModel(th.Nav)
	m.detail = itemdetail.NewModel(th.Panel)
	// Candidates read through the model so they track dataset reloads.
	m.bar = filterbar.NewModel(th.Footer, dataset.Foundation, m.filters, func(c filter.Category) []string {
		return filter.CandidateValues(m.dataset.Items, c, m.dataset.Foundation)
	})

	grouped, menu, err := catalog.Group(dataset.Items, dataset.Categories)
	if err != nil {
		return nil, fmt.Errorf("grouping items: %w", err)
	}
	m.grouped = grouped
	m.menu = menu
	m.grid = itemgrid.NewModel(th.Grid, itemgrid.SectionsFrom(grouped))
	m.nav.SetMenu(menu, sectionCounts(grouped))

	m.sync = navsync.New(navsync.Hooks{
		ReplaceFragment: func(f string) { m.fragment = f },
		ScrollMenu:      func(a string) { m.nav.SetCurrent(a) },
		ScrollContent:   func(a string) { m.grid.ScrollToAnchor(a) },
		ContentVisible:  func() bool { return m.mode == modeNormal || m.mode == modeDetail },
	})

	m.grid.Focus()
	return m, nil
}

// Fragment returns the current shareable anchor, empty before any input.
func (m *Model) Fragment() string { return m.fragment }

type watchStartedMsg struct {
	ch     <-chan struct{}
	cancel context.CancelFunc
	err    error
}

type datasetChangedMsg struct{}

type watchStoppedMsg struct{}

func (m *Model) startWatchCmd() tea.Cmd {
	if m.watchPath == "" || m.reload == nil {
		return nil
	}
	path := m.watchPath
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := store.WatchFile(ctx, path)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return datasetChangedMsg{}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) reloadDatasetCmd() tea.Cmd {
	load := m.reload
	return func() tea.Msg {
		ds, err := load(context.Background())
		if err != nil {
			// Saves land in chunks; a half-written file fails to parse
			// and the next change signal retries.
			return nil
		}
		return events.DatasetReloadedMsg{Dataset: ds}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.initialAnchor != "" {
		cmds = append(cmds, events.NavigateCmd(appComponentID, m.initialAnchor))
	}
	if cmd := m.startWatchCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case events.NavigateMsg:
		if msg.Component == appComponentID {
			m.sync.Seed(msg.Anchor)
		} else {
			m.sync.Navigate(msg.Anchor)
		}
		return m, m.refreshDetailFromCursor()

	case events.SectionEnterMsg:
		m.sync.SectionEntered(msg.Section.Anchor)
		return m, nil

	case events.FilterChangeMsg:
		m.applyFilterChange(msg)
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			// The session keeps working without live reload.
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForChange()

	case datasetChangedMsg:
		return m, tea.Batch(m.reloadDatasetCmd(), m.waitForChange())

	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil

	case events.DatasetReloadedMsg:
		if msg.Dataset != nil {
			m.dataset = msg.Dataset
			m.regroup()
		}
		return m, nil

	case events.ItemHighlightMsg:
		m.showItem(msg.Item.ID, msg.Section)
		return m, nil

	case events.ItemSelectMsg:
		m.showItem(msg.Item.ID, msg.Section)
		m.mode = modeDetail
		m.layout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopWatch()
		return m, tea.Quit
	}

	switch m.mode {
	case modeHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.mode = modeNormal
		}
		return m, nil

	case modeFilter:
		switch msg.String() {
		case "esc", "f":
			m.mode = modeNormal
			return m, m.bar.Blur()
		}
		_, cmd := m.bar.Update(msg)
		return m, cmd

	case modeDetail:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeNormal
			m.layout()
			return m, nil
		}
		// Cursor keys keep working underneath the expanded panel.
		_, cmd := m.grid.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.stopWatch()
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
		return m, nil
	case "f":
		m.mode = modeFilter
		return m, m.bar.Focus()
	case "tab":
		return m, m.toggleFocus()
	}

	if m.focus == focusNav {
		_, cmd := m.nav.Update(msg)
		return m, cmd
	}
	_, cmd := m.grid.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusNav {
		m.focus = focusGrid
		return tea.Batch(m.nav.Blur(), m.grid.Focus())
	}
	m.focus = focusNav
	return tea.Batch(m.grid.Blur(), m.nav.Focus())
}

// applyFilterChange mutates the filter set and swaps in the regrouped
// snapshot. The grouped data and the menu come from the same grouping call,
// so the panes can never render different generations.
func (m *Model) applyFilterChange(msg events.FilterChangeMsg) {
	switch msg.Action {
	case events.ChangeAdd:
		m.filters.Add(msg.Category, msg.Value)
	case events.ChangeRemove:
		m.filters.Remove(msg.Category, msg.Value)
	case events.ChangeReset:
		m.filters.Reset()
	}
	m.regroup()
}

func (m *Model) regroup() {
	filtered := filter.Apply(m.dataset.Items, m.filters, m.dataset.Foundation)
	grouped, menu, err := catalog.Group(filtered, m.dataset.Categories)
	if err != nil {
		m.err = err
		return
	}
	m.grouped = grouped
	m.menu = menu
	m.nav.SetMenu(menu, sectionCounts(grouped))
	m.grid.SetSections(itemgrid.SectionsFrom(grouped))
	if item, sec, ok := m.grid.CurrentItem(); ok {
		m.detail.SetItem(&item, sectionRef(sec))
	} else {
		m.detail.SetItem(nil, events.SectionRef{})
	}
}

func (m *Model) showItem(id string, section events.SectionRef) {
	for i := range m.dataset.Items {
		if m.dataset.Items[i].ID == id {
			m.detail.SetItem(&m.dataset.Items[i], section)
			return
		}
	}
}

func (m *Model) refreshDetailFromCursor() tea.Cmd {
	item, sec, ok := m.grid.CurrentItem()
	if !ok {
		return nil
	}
	m.detail.SetItem(&item, sectionRef(sec))
	return nil
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	contentHeight := m.height - footerRows
	if contentHeight < 1 {
		contentHeight = 1
	}

	navWidth := m.width / 4
	if navWidth < navMinWidth {
		navWidth = navMinWidth
	}
	if navWidth > navMaxWidth {
		navWidth = navMaxWidth
	}
	gridWidth := m.width - navWidth - gutterWidth
	if m.mode == modeDetail {
		detailWidth := m.width / 3
		m.detail.SetSize(detailWidth, contentHeight)
		gridWidth -= detailWidth + gutterWidth
	}
	if gridWidth < 20 {
		gridWidth = 20
	}

	m.nav.SetSize(navWidth, contentHeight)
	m.grid.SetSize(gridWidth, contentHeight)
	m.bar.SetSize(m.width)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.mode == modeHelp {
		return lipgloss.JoinVertical(lipgloss.Left, helpLines...)
	}

	panes := []string{m.nav.View(), lipgloss.NewStyle().Width(gutterWidth).Render(""), m.grid.View()}
	if m.mode == modeDetail {
		panes = append(panes, lipgloss.NewStyle().Width(gutterWidth).Render(""), m.detail.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	status := m.statusLine()
	return lipgloss.JoinVertical(lipgloss.Left, body, status, m.bar.View())
}

func (m *Model) statusLine() string {
	total := len(m.dataset.Items)
	shown := m.grouped.ItemCount()
	line := fmt.Sprintf("%d/%d items", shown, total)
	if m.fragment != "" {
		line += "  #" + m.fragment
	}
	if m.err != nil {
		line += "  " + m.err.Error()
	}
	return m.theme.Footer.Status.MaxWidth(m.width).Render(line)
}

// Run starts the program in the alternate screen. On exit the final anchor
// is printed so the session can be resumed with --anchor.
func (m *Model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.fragment != "" {
		fmt.Printf("resume with: landscape explore --anchor %q\n", m.fragment)
	}
	return nil
}

func sectionCounts(grouped catalog.CategoriesData) map[string]int {
	counts := make(map[string]int)
	for _, cat := range grouped.Categories {
		for _, sub := range cat.Subcategories {
			sec := itemgrid.Section{Category: cat.Name, Subcategory: sub.Name}
			counts[sec.Anchor()] = len(sub.Items)
		}
	}
	return counts
}

func sectionRef(sec itemgrid.Section) events.SectionRef {
	return events.SectionRef{
		Category:    sec.Category,
		Subcategory: sec.Subcategory,
		Anchor:      sec.Anchor(),
	}
}
