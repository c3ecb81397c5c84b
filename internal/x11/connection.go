// Package x11 is the thin typed wrapper around the raw X11 server
// connection. Per spec.md §9 ("unsafe server calls"), it is the only
// package permitted to issue raw xgb/xproto requests; every other package
// talks to the server through the methods here.
package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Connection owns the server connection and the cursors/atoms created
// against it, and exposes the raw xgbutil handle to the rest of x11.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	logger  *slog.Logger
	cursors cursorSet
}

// NewConnection opens the display named by $DISPLAY (xgbutil.NewConn
// resolves that, defaulting to ":0" in the Xlib tradition), initializes the
// keybind module required for global hotkey grabs, and creates the cursors.
// No separate error handler is installed: server errors are logged and
// skipped by WaitForEvent.
func NewConnection(logger *slog.Logger) (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("open X display: %w", err)
	}

	keybind.Initialize(xu)

	c := &Connection{XUtil: xu, Root: xu.RootWin(), logger: logger}

	cursors, err := newCursorSet(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("create cursors: %w", err)
	}
	c.cursors = cursors

	return c, nil
}

// WaitForEvent blocks until the next server event arrives and returns it.
// In-flight server errors are swallowed here — logged with code, resource
// id, and request code, and the wait continues — so a single malformed
// request from a misbehaving client never aborts the loop (spec.md §4.1/§7,
// the process-wide error handler).
func (c *Connection) WaitForEvent() xgb.Event {
	for {
		ev, xerr := c.XUtil.Conn().WaitForEvent()
		if xerr != nil {
			c.logger.Warn("X server error", "error", xerr.Error())
			continue
		}
		if ev == nil {
			continue
		}
		return ev
	}
}

// Close releases the server connection and every cursor created against it.
func (c *Connection) Close() {
	freeCursorSet(c.XUtil, c.cursors)
	c.XUtil.Conn().Close()
}

// PublishEWMH writes the root-window EWMH properties spec.md §6 requires:
// _NET_SUPPORTED, _NET_NUMBER_OF_DESKTOPS, _NET_CURRENT_DESKTOP,
// _NET_DESKTOP_NAMES, and an initial zeroed _NET_ACTIVE_WINDOW.
func (c *Connection) PublishEWMH(desktopCount int) error {
	supported := []string{
		"_NET_NUMBER_OF_DESKTOPS",
		"_NET_CURRENT_DESKTOP",
		"_NET_DESKTOP_NAMES",
		"_NET_ACTIVE_WINDOW",
	}
	if err := ewmh.SupportedSet(c.XUtil, supported); err != nil {
		return fmt.Errorf("set _NET_SUPPORTED: %w", err)
	}
	if err := ewmh.NumberOfDesktopsSet(c.XUtil, uint(desktopCount)); err != nil {
		return fmt.Errorf("set _NET_NUMBER_OF_DESKTOPS: %w", err)
	}
	if err := ewmh.CurrentDesktopSet(c.XUtil, 0); err != nil {
		return fmt.Errorf("set _NET_CURRENT_DESKTOP: %w", err)
	}

	names := make([]string, desktopCount)
	for i := range names {
		names[i] = fmt.Sprintf("Workspace %d", i+1)
	}
	if err := ewmh.DesktopNamesSet(c.XUtil, names); err != nil {
		return fmt.Errorf("set _NET_DESKTOP_NAMES: %w", err)
	}
	if err := ewmh.ActiveWindowSet(c.XUtil, 0); err != nil {
		return fmt.Errorf("set _NET_ACTIVE_WINDOW: %w", err)
	}
	return nil
}

// SetCurrentDesktop updates _NET_CURRENT_DESKTOP.
func (c *Connection) SetCurrentDesktop(i int) error {
	return ewmh.CurrentDesktopSet(c.XUtil, uint(i))
}

// SetActiveWindow updates _NET_ACTIVE_WINDOW.
func (c *Connection) SetActiveWindow(win xproto.Window) error {
	return ewmh.ActiveWindowSet(c.XUtil, win)
}

// Sync round-trips a no-op request so queued requests are flushed and
// observed by the server before the caller proceeds, matching spec.md
// §5's "synchronises with the server at natural points" guarantee.
func (c *Connection) Sync() {
	xproto.GetInputFocus(c.XUtil.Conn()).Reply()
}
