package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nfielder/gistwatch/internal/feed"
)

// snapshotMsg delivers the outcome of a fetch cycle to the model.
type snapshotMsg feed.Snapshot

// Model is the bubbletea model for the gist list widget.
type Model struct {
	ctx        context.Context
	controller *feed.Controller
	logger     *log.Logger

	// Latest controller snapshot; the single source of truth for the view.
	snapshot feed.Snapshot

	// Live filter input. Its value never triggers a re-fetch, only a
	// re-render.
	filter textinput.Model

	spinner spinner.Model
	styles  Styles

	width  int
	height int
}

func newModel(opts Options) Model {
	styles := newStyles(opts.ThemeName)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by description"
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Spinner

	return Model{
		ctx:        opts.Context,
		controller: opts.Controller,
		logger:     opts.Logger,
		snapshot:   opts.Controller.Snapshot(),
		filter:     ti,
		spinner:    sp,
		styles:     styles,
	}
}

// Init issues the single automatic fetch of the program's lifetime.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.fetchCmd())
}

// fetchCmd runs one full fetch cycle off the UI goroutine. The controller
// tags the cycle, so a result arriving after a newer refresh is discarded.
func (m Model) fetchCmd() tea.Cmd {
	ctx := m.ctx
	controller := m.controller
	return func() tea.Msg {
		return snapshotMsg(controller.Refresh(ctx))
	}
}
