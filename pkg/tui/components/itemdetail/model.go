// Package itemdetail renders the active-item panel: the record of the item
// the cursor last landed on, shown alongside the grid and expanded into a
// full card on selection.
package itemdetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/tui/events"
	"github.com/GLADI8R/landscape2/pkg/tui/theme"
)

// Model is the item detail panel component.
type Model struct {
	item    *data.Item
	section events.SectionRef

	width  int
	height int

	id events.ComponentID
	th theme.PanelTheme
}

// NewModel constructs an empty panel.
func NewModel(th theme.PanelTheme) *Model {
	return &Model{
		id: events.ComponentID("itemdetail"),
		th: th,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetSize configures the panel dimensions.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 40
	}
	if height <= 0 {
		height = 10
	}
	m.width = width
	m.height = height
}

// SetItem replaces the displayed item. A nil item clears the panel.
func (m *Model) SetItem(item *data.Item, section events.SectionRef) {
	if item == nil {
		m.item = nil
		m.section = events.SectionRef{}
		return
	}
	copied := *item
	m.item = &copied
	m.section = section
}

// Item returns the displayed item, when any.
func (m *Model) Item() *data.Item { return m.item }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. The panel is display only.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View renders the card.
func (m *Model) View() string {
	body := m.renderBody()
	frame := m.th.Frame.Width(m.width).Height(m.height)
	return frame.Render(body)
}

func (m *Model) renderBody() string {
	if m.item == nil {
		return m.th.Body.Render("no item selected")
	}

	inner := m.innerWidth()
	var lines []string
	title := m.item.Name
	if m.item.Maturity != "" {
		badge := lipgloss.NewStyle().
			Foreground(theme.MaturityColor(m.item.Maturity)).
			Render("● " + m.item.Maturity)
		title += "  " + badge
	}
	lines = append(lines, m.th.Title.Render(title))
	if m.section.Anchor != "" {
		lines = append(lines, m.th.Body.Render(m.section.Label()))
	}
	lines = append(lines, "")

	lines = appendField(lines, m.th, inner, "member group", m.item.MemberSubcategory)
	lines = appendField(lines, m.th, inner, "accepted", m.item.AcceptedAt)
	lines = appendField(lines, m.th, inner, "homepage", m.item.HomepageURL)
	lines = appendField(lines, m.th, inner, "devstats", m.item.DevstatsURL)
	lines = appendField(lines, m.th, inner, "twitter", m.item.TwitterURL)

	if cb := m.item.Crunchbase; cb != nil {
		lines = append(lines, "")
		lines = appendField(lines, m.th, inner, "organization", cb.Name)
		lines = appendField(lines, m.th, inner, "country", cb.Country)
		lines = appendField(lines, m.th, inner, "company type", cb.CompanyType)
		if len(cb.Categories) > 0 {
			lines = appendField(lines, m.th, inner, "industry", strings.Join(cb.Categories, ", "))
		}
		if cb.Funding != nil {
			lines = appendField(lines, m.th, inner, "funding", fmt.Sprintf("$%d", *cb.Funding))
		}
	}

	if len(m.item.Repositories) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.th.Title.Render("repositories"))
		for _, repo := range m.item.Repositories {
			lines = append(lines, m.repoLine(repo, inner)...)
		}
		if stars := m.item.Stars(); stars > 0 {
			lines = appendField(lines, m.th, inner, "total stars", fmt.Sprintf("%d", stars))
		}
		if licenses := m.item.Licenses(); len(licenses) > 0 {
			lines = appendField(lines, m.th, inner, "licenses", strings.Join(licenses, ", "))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) repoLine(repo data.Repository, width int) []string {
	label := repo.URL
	if repo.Primary {
		label += " (primary)"
	}
	var meta []string
	if repo.Github != nil {
		if repo.Github.Stars > 0 {
			meta = append(meta, fmt.Sprintf("★ %d", repo.Github.Stars))
		}
		if repo.Github.License != "" {
			meta = append(meta, repo.Github.License)
		}
	}
	if len(meta) > 0 {
		label += "  " + strings.Join(meta, " · ")
	}
	wrapped := wordwrap.String(label, width)
	var out []string
	for _, l := range strings.Split(wrapped, "\n") {
		out = append(out, m.th.Body.Render("  "+l))
	}
	return out
}

func (m *Model) innerWidth() int {
	inner := m.width - m.th.Frame.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	return inner
}

func appendField(lines []string, th theme.PanelTheme, width int, name, value string) []string {
	if value == "" {
		return lines
	}
	text := wordwrap.String(fmt.Sprintf("%s: %s", name, value), width)
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, th.Body.Render(l))
	}
	return lines
}
