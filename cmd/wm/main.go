// Command wm is the tiling window manager's entry point: it resolves
// configuration, opens the X display, and runs the control loop until an
// Exit action is executed.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/tilewm/tilewm/internal/config"
	"github.com/tilewm/tilewm/internal/ui"
	"github.com/tilewm/tilewm/internal/wm"
	"github.com/tilewm/tilewm/internal/x11"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("wm", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "enable debug-level logging")
	configPath := fs.String("config", "", "path to config.toml (default $HOME/.config/tilewm/config.toml)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}

	logger := newLogger(*verbose, true)

	// Refuse to run under Wayland (spec.md §6): this manager only speaks X11.
	if os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("XDG_SESSION_TYPE") == "wayland" {
		logger.Error("refusing to start: a Wayland session is active")
		return 1
	}

	path := *configPath
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			logger.Error("resolve configuration path failed", "error", err)
			return 1
		}
		path = resolved
	}

	cfg, wroteDefault, err := config.Load(path)
	if err != nil {
		logger.Warn("configuration load failed, continuing with defaults", "path", path, "error", err)
	} else if wroteDefault {
		logger.Info("wrote default configuration", "path", path)
	}

	logger = newLogger(*verbose, cfg.LoggingEnabled)

	conn, err := x11.NewConnection(logger)
	if err != nil {
		logger.Error("open X display failed", "error", err)
		return 1
	}
	defer conn.Close()

	manager := wm.New(conn, cfg, ui.NoopNotifier{}, ui.NoopStatusBar{}, logger)
	manager.SetConfigPath(path)

	watcher, err := config.NewWatcher(path, logger, func() {
		if err := conn.SendConfigReload(); err != nil {
			logger.Warn("post config reload sentinel failed", "error", err)
		}
	})
	if err != nil {
		logger.Warn("configuration hot-reload unavailable", "error", err)
	} else {
		defer watcher.Close()
	}

	if err := manager.Run(); err != nil {
		logger.Error("control loop exited with error", "error", err)
		return 1
	}
	return 0
}

func newLogger(verbose, enabled bool) *slog.Logger {
	out := io.Writer(os.Stderr)
	if !enabled {
		out = io.Discard
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
