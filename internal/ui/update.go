package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfielder/gistwatch/internal/feed"
)

// Update handles messages and keeps the filter input live.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.snapshot = feed.Snapshot(msg)
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Phase != feed.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// First esc clears the filter, second quits.
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				return m, nil
			}
			return m, tea.Quit
		case "ctrl+r":
			return m.startRefresh()
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// startRefresh shows the loading state immediately and kicks off a new
// fetch cycle. The filter value is left untouched.
func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if m.snapshot.Phase == feed.PhaseLoading {
		return m, nil
	}
	if m.logger != nil {
		m.logger.Debug("manual refresh requested")
	}
	m.snapshot = feed.Snapshot{Phase: feed.PhaseLoading, Since: m.controller.Since()}
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
}
