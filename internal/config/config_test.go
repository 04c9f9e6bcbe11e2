package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tinyd/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Docker.Timeout.Duration != 15*time.Second {
		t.Errorf("Docker.Timeout = %s, want 15s", cfg.Docker.Timeout.Duration)
	}
	if cfg.UI.TickRate.Duration != 33*time.Millisecond {
		t.Errorf("UI.TickRate = %s, want 33ms", cfg.UI.TickRate.Duration)
	}
	if cfg.UI.RefreshTicks != 10 || cfg.UI.DetailRefreshTicks != 10 {
		t.Errorf("refresh ticks = %d/%d, want 10/10", cfg.UI.RefreshTicks, cfg.UI.DetailRefreshTicks)
	}
	if cfg.StartTab() != types.KindContainers {
		t.Errorf("StartTab() = %v, want containers", cfg.StartTab())
	}
	if cfg.Log.Level != "info" || cfg.Log.File == "" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[docker]
host = "unix:///tmp/docker.sock"
timeout = "0s"
stop_timeout = 3

[ui]
tick_rate = "50ms"
refresh_ticks = 20
running_only = true
start_tab = "volumes"

[log]
level = "debug"

[theme]
accent = "#123456"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Docker.Host != "unix:///tmp/docker.sock" {
		t.Errorf("Docker.Host = %q", cfg.Docker.Host)
	}
	if cfg.Docker.Timeout.Duration != 0 {
		t.Errorf("Docker.Timeout = %s, want explicit 0s kept", cfg.Docker.Timeout.Duration)
	}
	if cfg.Docker.StopTimeout != 3 {
		t.Errorf("Docker.StopTimeout = %d, want 3", cfg.Docker.StopTimeout)
	}
	if cfg.UI.TickRate.Duration != 50*time.Millisecond || cfg.UI.RefreshTicks != 20 {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if !cfg.UI.RunningOnly {
		t.Error("UI.RunningOnly = false, want true")
	}
	if cfg.StartTab() != types.KindVolumes {
		t.Errorf("StartTab() = %v, want volumes", cfg.StartTab())
	}

	theme := BuildTheme(cfg.Theme)
	if theme.Accent != lipgloss.Color("#123456") {
		t.Errorf("theme accent = %v, want override", theme.Accent)
	}
	if theme.Border == "" {
		t.Error("theme border lost its default")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad duration", "[ui]\ntick_rate = \"soon\"", "invalid duration"},
		{"tick too fast", "[ui]\ntick_rate = \"10us\"", "tick_rate"},
		{"negative refresh", "[ui]\nrefresh_ticks = -1", "refresh_ticks"},
		{"unknown tab", "[ui]\nstart_tab = \"pods\"", "start_tab"},
		{"unknown level", "[log]\nlevel = \"loud\"", "log level"},
		{"bad toml", "[ui", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	got, err := EnsureDefaultConfig(path)
	if err != nil {
		t.Fatalf("EnsureDefaultConfig() error: %v", err)
	}
	if got != path {
		t.Errorf("EnsureDefaultConfig() = %q, want %q", got, path)
	}

	// The generated file is all comments and must load as defaults.
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(default file) error: %v", err)
	}
	if cfg.UI.RefreshTicks != 10 {
		t.Errorf("RefreshTicks = %d, want 10", cfg.UI.RefreshTicks)
	}

	// An existing file is left alone.
	if err := os.WriteFile(path, []byte("[ui]\nrefresh_ticks = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureDefaultConfig(path); err != nil {
		t.Fatalf("EnsureDefaultConfig() on existing file error: %v", err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.RefreshTicks != 4 {
		t.Errorf("existing config overwritten, RefreshTicks = %d", cfg.UI.RefreshTicks)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")

	if got := DefaultConfigPath(); got != "/cfg/tinyd/config.toml" {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
	if got := DefaultLogPath(); got != "/state/tinyd/tinyd.log" {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
