package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/nfielder/gistwatch/internal/config"
	"github.com/nfielder/gistwatch/internal/feed"
	"github.com/nfielder/gistwatch/internal/gitapi"
	"github.com/nfielder/gistwatch/internal/prefs"
	"github.com/nfielder/gistwatch/internal/ui"
)

// Options configure the gistwatch application. Flag values override the
// corresponding config file entries when non-zero.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gistwatch/prefs.toml
	Username   string
	Limit      int
	Since      string
	Verbose    bool
}

// Run boots the gistwatch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = applyOverrides(cfg, opts)
	if cfg.Username == "" {
		return fmt.Errorf("no username configured: pass -user or set username in the config file")
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, logCloser, err := newFileLogger(cfg.LogDir, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	client := gitapi.NewClient()
	controller := feed.NewController(client, cfg.Username, cfg.Limit, cfg.Since, logger)

	logger.Info("starting gistwatch", "user", cfg.Username, "limit", cfg.Limit, "since", cfg.Since)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		ThemeName:  userPrefs.Theme,
		Logger:     logger,
	}
	return ui.Run(uiOpts)
}

// applyOverrides layers non-zero flag values over the loaded config.
func applyOverrides(cfg config.Config, opts Options) config.Config {
	if u := strings.TrimSpace(opts.Username); u != "" {
		cfg.Username = u
	}
	if opts.Limit > 0 {
		cfg.Limit = opts.Limit
	}
	if s := strings.TrimSpace(opts.Since); s != "" {
		cfg.Since = s
	}
	return cfg
}
