// Package config loads the tinyd TOML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"tinyd/internal/components"
	"tinyd/internal/types"
)

// Duration wraps time.Duration for TOML string parsing ("33ms", "15s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	return nil
}

type Config struct {
	Docker DockerConfig `toml:"docker"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
	Theme  ThemeConfig  `toml:"theme"`
}

type DockerConfig struct {
	Host        string    `toml:"host"`
	Timeout     *Duration `toml:"timeout"` // unset uses the default, "0s" disables
	StopTimeout int       `toml:"stop_timeout"`
}

type UIConfig struct {
	TickRate           Duration `toml:"tick_rate"`
	RefreshTicks       int      `toml:"refresh_ticks"`
	DetailRefreshTicks int      `toml:"detail_refresh_ticks"`
	RunningOnly        bool     `toml:"running_only"`
	StartTab           string   `toml:"start_tab"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ThemeConfig holds optional color overrides. Empty strings keep the defaults.
// Values can be ANSI numbers ("1"), 256-palette numbers ("196"), or hex ("#ff0000").
type ThemeConfig struct {
	Border   string `toml:"border"`
	Accent   string `toml:"accent"`
	Selected string `toml:"selected"`
	Error    string `toml:"error"`
	Muted    string `toml:"muted"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tinyd/config.toml,
// falling back to ~/.config/tinyd/config.toml if unset.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "tinyd", "config.toml")
}

// DefaultLogPath returns $XDG_STATE_HOME/tinyd/tinyd.log,
// falling back to ~/.local/state/tinyd/tinyd.log if unset.
func DefaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(dir, "tinyd", "tinyd.log")
}

const defaultConfigContent = `# tinyd configuration.
#
# [docker]
# host = ""            # empty uses DOCKER_HOST or the default socket
# timeout = "15s"      # per daemon call, "0s" disables
# stop_timeout = 10    # seconds granted to stop and restart
#
# [ui]
# tick_rate = "33ms"
# refresh_ticks = 10         # list refresh cadence, in ticks
# detail_refresh_ticks = 10  # detail refresh cadence, in ticks
# running_only = false       # start the containers tab showing running containers only
# start_tab = "containers"   # containers, images, volumes or networks
#
# [log]
# file = ""            # default $XDG_STATE_HOME/tinyd/tinyd.log
# level = "info"       # debug, info, warn or error
#
# [theme]
# Colors accept ANSI numbers, 256-palette numbers, or hex values.
# border = "#00FF00"
# accent = "#00FFFF"
# selected = "#FFFF00"
# error = "#FF0000"
# muted = "#999999"
`

// EnsureDefaultConfig creates the default config file if it does not exist.
// Returns the path to the config file.
func EnsureDefaultConfig(path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return path, nil
}

// LoadConfig reads, defaults and validates a TOML config file
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Docker.Timeout == nil {
		cfg.Docker.Timeout = &Duration{15 * time.Second}
	}
	if cfg.Docker.StopTimeout == 0 {
		cfg.Docker.StopTimeout = 10
	}
	if cfg.UI.TickRate.Duration == 0 {
		cfg.UI.TickRate.Duration = 33 * time.Millisecond
	}
	if cfg.UI.RefreshTicks == 0 {
		cfg.UI.RefreshTicks = 10
	}
	if cfg.UI.DetailRefreshTicks == 0 {
		cfg.UI.DetailRefreshTicks = 10
	}
	if cfg.UI.StartTab == "" {
		cfg.UI.StartTab = types.KindContainers.String()
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultLogPath()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func validate(cfg *Config) error {
	if cfg.Docker.Timeout.Duration < 0 {
		return fmt.Errorf("docker timeout must be >= 0, got %s", cfg.Docker.Timeout.Duration)
	}
	if cfg.Docker.StopTimeout < 0 {
		return fmt.Errorf("stop_timeout must be >= 0, got %d", cfg.Docker.StopTimeout)
	}
	if cfg.UI.TickRate.Duration < time.Millisecond {
		return fmt.Errorf("tick_rate must be >= 1ms, got %s", cfg.UI.TickRate.Duration)
	}
	if cfg.UI.RefreshTicks < 1 {
		return fmt.Errorf("refresh_ticks must be >= 1, got %d", cfg.UI.RefreshTicks)
	}
	if cfg.UI.DetailRefreshTicks < 1 {
		return fmt.Errorf("detail_refresh_ticks must be >= 1, got %d", cfg.UI.DetailRefreshTicks)
	}
	if _, err := types.ParseResourceKind(cfg.UI.StartTab); err != nil {
		return fmt.Errorf("start_tab: %w", err)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

// StartTab returns the configured initial tab
func (c *Config) StartTab() types.ResourceKind {
	kind, err := types.ParseResourceKind(c.UI.StartTab)
	if err != nil {
		return types.KindContainers
	}
	return kind
}

// ParseLevel maps a level name to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// BuildTheme returns the default theme with any non-empty ThemeConfig fields
// applied as overrides.
func BuildTheme(tc ThemeConfig) components.Theme {
	t := components.DefaultTheme()
	override := func(dst *lipgloss.Color, src string) {
		if src != "" {
			*dst = lipgloss.Color(src)
		}
	}
	override(&t.Border, tc.Border)
	override(&t.Accent, tc.Accent)
	override(&t.Selected, tc.Selected)
	override(&t.Error, tc.Error)
	override(&t.Muted, tc.Muted)
	return t
}
