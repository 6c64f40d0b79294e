package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nfielder/gistwatch/internal/feed"
	"github.com/nfielder/gistwatch/internal/gitapi"
)

const noDescriptionPlaceholder = "(no description)"

// View renders the whole widget: header, filter input, body, footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	parts := []string{
		m.styles.Logo.Render("gistwatch"),
		m.styles.Header.Render(m.controller.Username()),
		m.styles.Muted.Render("since " + datePortion(m.controller.Since())),
	}

	if m.snapshot.Phase == feed.PhaseReady {
		shown := 0
		for _, g := range m.snapshot.Gists {
			if feed.Matches(g.Description, m.filter.Value()) {
				shown++
			}
		}
		parts = append(parts, m.styles.Count.Render(
			fmt.Sprintf("%d/%d shown", shown, len(m.snapshot.Gists))))

		if !m.snapshot.FetchedAt.IsZero() {
			parts = append(parts, m.styles.Muted.Render(
				"fetched "+humanize.Time(m.snapshot.FetchedAt)))
		}
	}

	return strings.Join(parts, "  ")
}

func (m Model) renderBody() string {
	switch m.snapshot.Phase {
	case feed.PhaseLoading:
		return m.spinner.View() + m.styles.Muted.Render(" Loading gists...")

	case feed.PhaseErrored:
		return m.styles.Error.Render("Error: ") +
			m.styles.Header.Render(m.snapshot.ErrorMessage)
	}

	if len(m.snapshot.Gists) == 0 {
		return m.styles.Empty.Render("No gists found.")
	}

	var rows []string
	for _, g := range m.snapshot.Gists {
		if !feed.Matches(g.Description, m.filter.Value()) {
			continue
		}
		rows = append(rows, m.renderRow(g))
	}
	if len(rows) == 0 {
		return m.styles.Empty.Render(
			fmt.Sprintf("No gists match %q.", m.filter.Value()))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderRow(g gitapi.Gist) string {
	date := gistDate(g)

	desc := g.DescriptionOrEmpty()
	descStyle := m.styles.Desc
	if desc == "" {
		desc = noDescriptionPlaceholder
		descStyle = m.styles.NoDesc
	}
	if m.width > 0 {
		// date(10) + count column + separators
		desc = truncate(desc, max(20, m.width-30))
	}

	parts := []string{
		m.styles.Date.Render(date),
		descStyle.Render(desc),
		m.styles.Count.Render(fileCountLabel(g.FileCount())),
	}
	if t := g.ParsedUpdatedAt(); !t.IsZero() {
		parts = append(parts, m.styles.Muted.Render("updated "+humanize.Time(t)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render("type to filter • ctrl+r refresh • esc clear/quit • ctrl+c quit")
}
