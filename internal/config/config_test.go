package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nfielder/gistwatch/internal/feed"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Username != "" {
		t.Fatalf("Username = %q, want empty", cfg.Username)
	}
	if cfg.Limit != feed.DefaultLimit {
		t.Fatalf("Limit = %d, want %d", cfg.Limit, feed.DefaultLimit)
	}
	if cfg.Since != feed.DefaultSince {
		t.Fatalf("Since = %q, want %q", cfg.Since, feed.DefaultSince)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "gistwatch.log") {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath(), filepath.Join(wantLogDir, "gistwatch.log"))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
username = "  octocat  "
limit = 25
since = "  2023-06-01T00:00:00Z  "
log_dir = "  ~/.gistwatch/logs  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Username != "octocat" {
		t.Fatalf("Username = %q, want octocat", cfg.Username)
	}
	if cfg.Limit != 25 {
		t.Fatalf("Limit = %d, want 25", cfg.Limit)
	}
	if cfg.Since != "2023-06-01T00:00:00Z" {
		t.Fatalf("Since = %q, want trimmed timestamp", cfg.Since)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
username = ""
since = "   "
limit = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Limit != feed.DefaultLimit {
		t.Fatalf("Limit = %d, want %d", cfg.Limit, feed.DefaultLimit)
	}
	if cfg.Since != feed.DefaultSince {
		t.Fatalf("Since = %q, want %q", cfg.Since, feed.DefaultSince)
	}
}

func TestLoad_MalformedConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("username = [not toml"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load returned nil error for malformed config")
	}
}
