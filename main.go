package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"tinyd/internal/components"
	"tinyd/internal/config"
	"tinyd/internal/docker"
	"tinyd/internal/event"
	"tinyd/internal/ui"
)

var version = "v2.0.1"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Program panicked: %v\n", r)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to config file (default $XDG_CONFIG_HOME/tinyd/config.toml)")
	host := flag.String("host", "", "docker daemon address, overrides [docker] host")
	debug := flag.Bool("debug", false, "log at debug level")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tinyd", version)
		return
	}

	if err := run(*configPath, *host, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, host string, debug bool) error {
	path, err := config.EnsureDefaultConfig(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Docker.Host = host
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	logFile, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	components.ApplyTheme(config.BuildTheme(cfg.Theme))

	cli, err := docker.NewClient(docker.Options{
		Host:        cfg.Docker.Host,
		Timeout:     cfg.Docker.Timeout.Duration,
		StopTimeout: cfg.Docker.StopTimeout,
	})
	if err != nil {
		return err
	}
	defer cli.Close()

	slog.Info("starting", "version", version, "host", cli.Host(), "config", path)

	term := ui.NewTerminal()
	g, ctx := errgroup.WithContext(context.Background())

	mux := event.NewMultiplexer(ctx, term, cfg.UI.TickRate.Duration)
	mux.Start()
	defer mux.Stop()

	app := ui.NewApp(cli, mux, ui.Options{
		Version:            version,
		Host:               cli.Host(),
		StartTab:           cfg.StartTab(),
		RunningOnly:        cfg.UI.RunningOnly,
		RefreshTicks:       cfg.UI.RefreshTicks,
		DetailRefreshTicks: cfg.UI.DetailRefreshTicks,
	})

	g.Go(func() error {
		if err := term.Run(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer term.Quit()
		err := app.Run(ctx, term)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	if inputErr := mux.Err(); inputErr != nil && !errors.Is(inputErr, ui.ErrTerminalClosed) {
		slog.Error("input failed", "error", inputErr)
	}
	slog.Info("stopped")
	return err
}

// openLog points slog at the configured log file
func openLog(cfg config.LogConfig) (*os.File, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}
