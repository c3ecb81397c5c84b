// Package wm is the control loop: the event-driven state machine described
// in spec.md §4.5. It owns all mutable window-manager state and is the
// sole reconciler between the three authorities that believe they know a
// window's focused/visible/geometric state — the X server, the client, and
// the manager itself.
package wm

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/command"
	"github.com/tilewm/tilewm/internal/config"
	"github.com/tilewm/tilewm/internal/keys"
	"github.com/tilewm/tilewm/internal/layout"
	"github.com/tilewm/tilewm/internal/ui"
	"github.com/tilewm/tilewm/internal/workspace"
	"github.com/tilewm/tilewm/internal/x11"
)

const desktopCount = 10

// gesture tracks an in-progress move or resize, per spec.md §4.5.2.
type gesture struct {
	dragging bool
	resizing bool
	window   xproto.Window

	// startX/startY is the pointer's root position when the gesture began.
	startX int
	startY int

	// originX/originY is the gesture window's position when a move began.
	originX int
	originY int

	// startW/startH is the gesture window's size when a resize began.
	startW int
	startH int
}

func (g *gesture) active() bool { return g.dragging || g.resizing }

func (g *gesture) clear() { *g = gesture{} }

// Manager is the sole substructure-redirect client of the root window.
type Manager struct {
	conn       *x11.Connection
	cfg        *config.Config
	configPath string
	keys       *keys.Resolver
	tiler      *layout.Tiler
	logger     *slog.Logger

	notifier  ui.Notifier
	statusBar ui.StatusBar

	monitors []x11.Rect

	workspaces [desktopCount]*workspace.Workspace
	docks      []*workspace.Record
	current    int

	// modifierMask is the resolved global modifier (spec.md §4.4), cached
	// so ButtonPress/KeyPress handlers don't re-parse the config string.
	modifierMask uint16

	// pendingUnmap counts UnmapNotify events the manager expects because it
	// just unmapped the window itself (workspace switch, spec.md §4.5.6).
	// Those unmaps must not be treated as the client withdrawing the
	// window (spec.md §9's synthetic-vs-real unmap open question).
	pendingUnmap map[xproto.Window]int

	gesture gesture
	running bool
}

// New constructs a Manager. Configuration and UI surfaces must already be
// loaded/constructed; New performs no server I/O — call Run to execute the
// init sequence and block in the event loop.
func New(conn *x11.Connection, cfg *config.Config, notifier ui.Notifier, statusBar ui.StatusBar, logger *slog.Logger) *Manager {
	if notifier == nil {
		notifier = ui.NoopNotifier{}
	}
	if statusBar == nil {
		statusBar = ui.NoopStatusBar{}
	}

	m := &Manager{
		conn:         conn,
		cfg:          cfg,
		keys:         keys.NewResolver(conn.XUtil, conn.Root),
		notifier:     notifier,
		statusBar:    statusBar,
		logger:       logger,
		pendingUnmap: make(map[xproto.Window]int),
	}
	for i := range m.workspaces {
		m.workspaces[i] = workspace.New(fmt.Sprintf("Workspace %d", i+1))
	}
	return m
}

// Run executes the spec.md §4.5 init sequence and then blocks in the
// server's event loop until an Exit action is executed.
func (m *Manager) Run() error {
	monitors, err := m.conn.Monitors()
	if err != nil {
		return fmt.Errorf("query monitors: %w", err)
	}
	m.monitors = monitors

	layoutCfg := layoutConfigFrom(m.cfg)
	m.tiler = layout.New(m.conn, toLayoutRect(monitors[0]), layoutCfg, m.logger)

	if err := m.conn.PublishEWMH(desktopCount); err != nil {
		return fmt.Errorf("publish EWMH properties: %w", err)
	}

	if err := m.conn.SelectRootEvents(); err != nil {
		return fmt.Errorf("select root events: %w", err)
	}
	if err := m.conn.SetRootCursor(); err != nil {
		m.logger.Warn("set root cursor failed", "error", err)
	}

	if errs := m.keys.Regrab(m.cfg); len(errs) > 0 {
		for _, e := range errs {
			m.logger.Warn("key bind skipped", "error", e)
		}
	}
	m.modifierMask = keys.ModifierMask(m.cfg.Modifier)

	m.current = 0

	m.running = true
	for m.running {
		m.dispatch(m.conn.WaitForEvent())
	}
	return nil
}

// stop clears the running flag, the only cancellation path (spec.md §5):
// the loop checks it before waiting for the next event, and an Exit action
// always runs to completion before that check, so no unblocking signal is
// needed.
func (m *Manager) stop() {
	m.running = false
}

func layoutConfigFrom(cfg *config.Config) layout.Config {
	return layout.Config{
		BorderWidth:  int(cfg.Appearance.BorderWidth),
		Gaps:         int(cfg.Appearance.Gaps),
		BorderColor:  parseColor(cfg.Appearance.BorderColor),
		FocusedColor: parseColor(cfg.Appearance.FocusedBorderColor),
		MasterRatio:  0.5,
	}
}

func toLayoutRect(r x11.Rect) layout.Rect {
	return layout.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// SetConfigPath records where reloadConfig re-reads configuration from; the
// CLI bootstrap calls this once after resolving the configuration path.
func (m *Manager) SetConfigPath(path string) {
	m.configPath = path
}

// UpdateConfig is the one-way push described in spec.md §9: the loop calls
// this on config reload, and every downstream component that needs the new
// values (the layout engine, the key resolver) is handed a fresh copy.
func (m *Manager) UpdateConfig(cfg *config.Config) {
	m.cfg = cfg
	m.tiler.UpdateConfig(layoutConfigFrom(cfg))
	if errs := m.keys.Regrab(cfg); len(errs) > 0 {
		for _, e := range errs {
			m.logger.Warn("key bind skipped", "error", e)
		}
	}
	m.modifierMask = keys.ModifierMask(cfg.Modifier)
}

// spawn runs the command line argv0 through /bin/sh -c with stdout/stderr
// redirected to the null device; the handler does not wait on it (a
// background goroutine reaps the child), per spec.md §5: "no handler may block except during
// the process spawn (which forks quickly and does not wait)".
func (m *Manager) spawn(argv0 string) {
	cmd := exec.Command("/bin/sh", "-c", argv0)
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err == nil {
		cmd.Stdout = devNull
		cmd.Stderr = devNull
	}
	if err := cmd.Start(); err != nil {
		m.logger.Warn("spawn failed", "command", argv0, "error", err)
		m.notifier.Notify(fmt.Sprintf("failed to spawn %q: %v", argv0, err))
		return
	}
	go func() {
		cmd.Wait()
		if devNull != nil {
			devNull.Close()
		}
	}()
}

// execute runs one parsed command-vocabulary action (spec.md §4.4/§4.5.1).
func (m *Manager) execute(action command.Action) {
	switch action.Kind {
	case command.Exit:
		m.stop()
	case command.Close:
		m.closeFocusedWindow()
	case command.Spawn:
		m.spawn(action.Arg)
	case command.Workspace:
		m.switchWorkspace(action.Index)
	case command.ToggleFloat:
		m.toggleFloat()
	case command.ToggleFullscreen:
		m.toggleFullscreen()
	}
}
