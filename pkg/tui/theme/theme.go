// Package theme centralizes Lip Gloss styles for the explorer UI.
package theme

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across the explorer.
type Theme struct {
	Nav    NavTheme
	Grid   GridTheme
	Footer FooterTheme
	Panel  PanelTheme
}

// NavTheme styles the sidebar navigation menu.
type NavTheme struct {
	Category    lipgloss.Style
	Subcategory lipgloss.Style
	Current     lipgloss.Style
}

// GridTheme styles the sectioned content pane.
type GridTheme struct {
	Header       lipgloss.Style
	ActiveHeader lipgloss.Style
	Item         lipgloss.Style
	Cursor       lipgloss.Style
	Meta         lipgloss.Style
}

// FooterTheme groups styles for the status/filter bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Chip   lipgloss.Style
}

// PanelTheme styles framed panels such as the item detail overlay.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Nav: NavTheme{
			Category:    lipgloss.NewStyle().Bold(true),
			Subcategory: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Current:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		},
		Grid: GridTheme{
			Header:       lipgloss.NewStyle().Bold(true),
			ActiveHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Item:         lipgloss.NewStyle(),
			Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			Meta:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Chip:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

var (
	graduatedColor  = mustColor("#34a853")
	incubatingColor = mustColor("#4285f4")
	sandboxColor    = mustColor("#9aa0a6")
)

// MaturityColor returns the badge color for a maturity level. Unknown levels
// blend between the incubating and sandbox hues so custom foundations still
// get a stable, readable color.
func MaturityColor(maturity string) color.Color {
	switch strings.ToLower(maturity) {
	case "graduated":
		return lipgloss.Color(graduatedColor.Hex())
	case "incubating":
		return lipgloss.Color(incubatingColor.Hex())
	case "sandbox", "":
		return lipgloss.Color(sandboxColor.Hex())
	}
	blend := incubatingColor.BlendLab(sandboxColor, 0.5)
	return lipgloss.Color(blend.Hex())
}

func mustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.6, G: 0.6, B: 0.6}
	}
	return c
}
