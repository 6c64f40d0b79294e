package ui

import (
	"fmt"

	"github.com/nfielder/gistwatch/internal/gitapi"
)

const datePlaceholder = "----------"

// datePortion returns the date part of an ISO-8601 timestamp, i.e. its
// first ten characters.
func datePortion(timestamp string) string {
	if len(timestamp) < 10 {
		return timestamp
	}
	return timestamp[:10]
}

// gistDate picks the display date for a gist: updated_at, falling back to
// created_at, falling back to a fixed-width placeholder.
func gistDate(g gitapi.Gist) string {
	if g.UpdatedAt != "" {
		return datePortion(g.UpdatedAt)
	}
	if g.CreatedAt != "" {
		return datePortion(g.CreatedAt)
	}
	return datePlaceholder
}

func fileCountLabel(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// truncate shortens s to at most max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
