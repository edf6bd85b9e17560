// Package autocomplete implements the suggestion list behind free-text
// fields such as the author of a book.
//
// Filter computes suggestions for a query. Model wraps it in the
// keyboard-driven selection state machine used by the terminal picker:
//
//	Idle ──type──▶ Filtering ──↓/↑──▶ Navigating
//	  │               │                  │
//	  └──Enter────────┴──────Enter───────┴──▶ Selected
//	  └──Esc──────────┴──────Esc─────────┴──▶ Dismissed
//
// Selected and Dismissed are terminal until Reset.
package autocomplete

import (
	"cmp"
	"slices"
	"strings"
)

// Filter returns the candidates that contain query as a case-insensitive
// substring. Matches are ordered by the position of the first match, then
// case-insensitively, then bytewise so the result is fully deterministic.
// A blank query matches nothing.
func Filter(query string, candidates []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type match struct {
		value string
		lower string
		pos   int
	}

	var matches []match
	for _, c := range candidates {
		lower := strings.ToLower(c)
		if pos := strings.Index(lower, q); pos >= 0 {
			matches = append(matches, match{value: c, lower: lower, pos: pos})
		}
	}

	slices.SortFunc(matches, func(a, b match) int {
		return cmp.Or(
			cmp.Compare(a.pos, b.pos),
			strings.Compare(a.lower, b.lower),
			strings.Compare(a.value, b.value),
		)
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
