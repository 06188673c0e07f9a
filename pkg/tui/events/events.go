// Package events defines the typed messages exchanged between explorer
// components. Every message carries the emitting ComponentID so consumers
// can scope their reactions, and a Describe helper for diagnostics.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/filter"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SectionRef identifies a rendered (category, subcategory) section.
type SectionRef struct {
	Category    string
	Subcategory string
	Anchor      string
}

// Label returns a human-friendly identifier for the section.
func (r SectionRef) Label() string {
	if r.Category == "" {
		return r.Anchor
	}
	return r.Category + " / " + r.Subcategory
}

// ItemRef carries the fields components need to reference an item across
// events without sharing the full record.
type ItemRef struct {
	ID       string
	Name     string
	Maturity string
}

// SectionEnterMsg fires when a section crosses into the visibility band of
// the content pane. Consumers must treat repeats idempotently: fast scrolls
// deliver entries for several sections back to back and the last one wins.
type SectionEnterMsg struct {
	Component ComponentID
	Section   SectionRef
}

// Describe renders the entry in a human-friendly format for logs.
func (m SectionEnterMsg) Describe() string {
	return fmt.Sprintf(`section:%q anchor:%q`, m.Section.Label(), m.Section.Anchor)
}

// NavigateMsg fires when the user explicitly navigates: activating a menu
// entry or following a deep link.
type NavigateMsg struct {
	Component ComponentID
	Anchor    string
}

// Describe renders the navigation in a human-friendly format for logs.
func (m NavigateMsg) Describe() string {
	return fmt.Sprintf(`anchor:%q`, m.Anchor)
}

// NavigateCmd wraps NavigateMsg in a tea.Cmd.
func NavigateCmd(component ComponentID, anchor string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Component: component, Anchor: anchor}
	}
}

// ChangeType enumerates filter mutations.
type ChangeType string

const (
	// ChangeAdd accepts a new value for a filter category.
	ChangeAdd ChangeType = "add"
	// ChangeRemove drops a value from a filter category.
	ChangeRemove ChangeType = "remove"
	// ChangeReset drops every active filter.
	ChangeReset ChangeType = "reset"
)

// FilterChangeMsg announces a filter mutation. The catalog snapshot is
// recomputed by the owner in one pass so grouped data and menu never mix
// generations.
type FilterChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Category  filter.Category
	Value     string
}

// Describe renders the change in a human-friendly format for logs.
func (m FilterChangeMsg) Describe() string {
	return fmt.Sprintf(`action:%q category:%q value:%q`, m.Action, m.Category, m.Value)
}

// FilterChangeCmd wraps FilterChangeMsg in a tea.Cmd.
func FilterChangeCmd(component ComponentID, action ChangeType, category filter.Category, value string) tea.Cmd {
	return func() tea.Msg {
		return FilterChangeMsg{Component: component, Action: action, Category: category, Value: value}
	}
}

// DatasetReloadedMsg replaces the dataset behind the explorer, typically
// after the watched dataset file changed on disk. Active filters and the
// current anchor survive the swap.
type DatasetReloadedMsg struct {
	Dataset *data.Dataset
}

// Describe renders the reload in a human-friendly format for logs.
func (m DatasetReloadedMsg) Describe() string {
	if m.Dataset == nil {
		return `items:0`
	}
	return fmt.Sprintf(`items:%d`, len(m.Dataset.Items))
}

// ItemHighlightMsg fires when the content pane cursor lands on an item.
type ItemHighlightMsg struct {
	Component ComponentID
	Section   SectionRef
	Item      ItemRef
}

// Describe renders the highlight in a human-friendly format for logs.
func (m ItemHighlightMsg) Describe() string {
	return fmt.Sprintf(`section:%q item:%q`, m.Section.Label(), m.Item.Name)
}

// ItemSelectMsg fires when the user activates an item to inspect it.
type ItemSelectMsg struct {
	Component ComponentID
	Section   SectionRef
	Item      ItemRef
}

// Describe renders the selection in a human-friendly format for logs.
func (m ItemSelectMsg) Describe() string {
	return fmt.Sprintf(`section:%q item:%q`, m.Section.Label(), m.Item.Name)
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}
