package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles used by the widget.
type Styles struct {
	Logo    lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Date    lipgloss.Style
	Desc    lipgloss.Style
	NoDesc  lipgloss.Style
	Count   lipgloss.Style
	Error   lipgloss.Style
	Empty   lipgloss.Style
	Spinner lipgloss.Style
	Footer  lipgloss.Style
}

// newStyles builds the style set for the named theme. Unknown names fall
// back to the dark theme.
func newStyles(theme string) Styles {
	type palette struct {
		accent  string
		text    string
		muted   string
		faint   string
		danger  string
		success string
	}

	p := palette{
		accent:  "212",
		text:    "252",
		muted:   "245",
		faint:   "240",
		danger:  "196",
		success: "114",
	}
	if theme == "light" {
		p = palette{
			accent:  "161",
			text:    "235",
			muted:   "243",
			faint:   "250",
			danger:  "124",
			success: "28",
		}
	}

	return Styles{
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),

		Date: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),

		Desc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),

		NoDesc: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.faint)),

		Count: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.danger)),

		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.muted)),

		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.faint)),
	}
}
