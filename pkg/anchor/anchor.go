// Package anchor builds the shareable section identifiers used to
// synchronize the content pane, the navigation menu and the deep-link flag.
// An anchor has the form "<category>/<subcategory>" with whitespace runs
// replaced by a single dash, lowercased. Both the emitting and the consuming
// side normalize through this package so equality checks are reliable.
package anchor

import "strings"

// Normalize lowercases a single path segment and collapses whitespace runs
// into single dashes.
func Normalize(segment string) string {
	fields := strings.Fields(strings.ToLower(segment))
	return strings.Join(fields, "-")
}

// ForSection returns the anchor for a (category, subcategory) pair.
func ForSection(category, subcategory string) string {
	return Normalize(category) + "/" + Normalize(subcategory)
}

// Canonical normalizes a full anchor, segment by segment, dropping empty
// segments. User-supplied deep links pass through here before comparison.
func Canonical(a string) string {
	parts := strings.Split(a, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if segment := Normalize(part); segment != "" {
			out = append(out, segment)
		}
	}
	return strings.Join(out, "/")
}

// Match reports whether two anchors identify the same section.
func Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Canonical(a) == Canonical(b)
}
