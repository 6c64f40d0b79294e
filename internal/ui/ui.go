// Package ui renders the gist list as a bubbletea program.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nfielder/gistwatch/internal/feed"
)

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Controller *feed.Controller
	ThemeName  string
	Logger     *log.Logger
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a feed controller")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
