package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/nfielder/gistwatch/internal/feed"
)

// Config captures the inputs gistwatch needs: whose gists to show and how
// the fetch window is bounded.
type Config struct {
	Username string
	Limit    int
	Since    string
	LogDir   string
}

const (
	defaultConfigPath = "~/.config/gistwatch/config.toml"
	defaultLogDir     = "~/.local/share/gistwatch/logs"
)

// Load locates and parses the gistwatch config, falling back to defaults
// when the file is missing. Username may legitimately be empty here; the
// caller decides whether a flag supplies it.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Limit: feed.DefaultLimit, Since: feed.DefaultSince, LogDir: defaultLogDir}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Username string `toml:"username"`
		Limit    int    `toml:"limit"`
		Since    string `toml:"since"`
		LogDir   string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Username = strings.TrimSpace(raw.Username)

	if raw.Limit > 0 {
		cfg.Limit = raw.Limit
	}

	cfg.Since = strings.TrimSpace(raw.Since)
	if cfg.Since == "" {
		cfg.Since = feed.DefaultSince
	}

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

// LogPath returns the path of the gistwatch debug log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/gistwatch.log")
	}
	return filepath.Join(c.LogDir, "gistwatch.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
