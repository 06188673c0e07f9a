// Package navsync keeps three independently updating signals consistent: the
// section visible in the content pane, the shareable anchor, and the
// navigation menu selection. A single Synchronizer owns the navigation state;
// everything it touches outside itself goes through injected hooks so the
// rendering host stays replaceable and every hook failure degrades to a
// no-op.
package navsync

import "github.com/GLADI8R/landscape2/pkg/anchor"

// Hooks are the Synchronizer's effects on the outside world. Any hook may be
// nil; a nil hook is skipped.
type Hooks struct {
	// ReplaceFragment rewrites the shareable anchor. It is a replace, not a
	// push: repeated section entries while scrolling must not pile up
	// navigable history.
	ReplaceFragment func(id string)
	// ScrollMenu brings the menu entry for the section into the menu's
	// visible region using the nearest-edge strategy.
	ScrollMenu func(id string)
	// ScrollContent aligns the section's top near the visibility band's top
	// edge in the content pane.
	ScrollContent func(id string)
	// ContentVisible gates section-entered handling while the content pane
	// is covered (detail overlay, filter picker). Nil means always visible.
	ContentVisible func() bool
}

// Synchronizer is the navigation state machine. It has two inputs: sections
// entering the visibility band (SectionEntered) and explicit navigation
// (Navigate). The fragment-equality check makes both inputs idempotent and
// breaks the rewrite loop between them.
type Synchronizer struct {
	hooks    Hooks
	fragment string
}

// New creates a Synchronizer with the given hooks.
func New(hooks Hooks) *Synchronizer {
	return &Synchronizer{hooks: hooks}
}

// Current returns the current navigation state, the anchor of the section
// the view is synchronized on. Empty until the first input arrives.
func (s *Synchronizer) Current() string {
	return s.fragment
}

// SectionEntered handles a section crossing into the visibility band (Input
// A). When the entering section already matches the fragment nothing
// happens; otherwise the fragment is rewritten and the menu scrolled. The
// return value reports whether a rewrite occurred. Events arriving in quick
// succession apply in order: the last writer wins.
func (s *Synchronizer) SectionEntered(id string) bool {
	if id == "" {
		return false
	}
	if s.hooks.ContentVisible != nil && !s.hooks.ContentVisible() {
		return false
	}
	if anchor.Match(s.fragment, id) {
		return false
	}
	s.fragment = anchor.Canonical(id)
	if s.hooks.ReplaceFragment != nil {
		s.hooks.ReplaceFragment(s.fragment)
	}
	if s.hooks.ScrollMenu != nil {
		s.hooks.ScrollMenu(s.fragment)
	}
	return true
}

// Navigate handles explicit navigation (Input B): a menu activation or a
// deep link. The fragment is set directly, the content pane scrolled and
// the menu selection moved; the entry event the scroll provokes then
// matches the fragment and is dropped by SectionEntered.
func (s *Synchronizer) Navigate(id string) {
	if id == "" {
		return
	}
	s.fragment = anchor.Canonical(id)
	if s.hooks.ReplaceFragment != nil {
		s.hooks.ReplaceFragment(s.fragment)
	}
	if s.hooks.ScrollContent != nil {
		s.hooks.ScrollContent(s.fragment)
	}
	if s.hooks.ScrollMenu != nil {
		s.hooks.ScrollMenu(s.fragment)
	}
}

// Seed applies a deep-linked anchor at mount time. It is explicit
// navigation; the name marks the call site.
func (s *Synchronizer) Seed(id string) {
	s.Navigate(id)
}

// Reset clears the navigation state, for view teardown or a regroup that
// removed the current section.
func (s *Synchronizer) Reset() {
	s.fragment = ""
}
