package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/config"
	"github.com/tilewm/tilewm/internal/workspace"
	"github.com/tilewm/tilewm/internal/x11"
)

// dispatch routes one server event to its handler, per spec.md §4.5.1. Event
// types the manager does not care about are ignored.
func (m *Manager) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		m.handleMapRequest(e.Window)
	case xproto.UnmapNotifyEvent:
		m.handleUnmapNotify(e.Window)
	case xproto.DestroyNotifyEvent:
		m.handleDestroyNotify(e.Window)
	case xproto.EnterNotifyEvent:
		m.handleEnterNotify(e.Event)
	case xproto.ButtonPressEvent:
		m.handleButtonPress(e)
	case xproto.ButtonReleaseEvent:
		m.endGesture()
	case xproto.MotionNotifyEvent:
		m.handleMotion(e)
	case xproto.KeyPressEvent:
		m.handleKeyPress(e)
	case xproto.ExposeEvent:
		m.notifier.HandleExpose(e)
	case xproto.ClientMessageEvent:
		m.handleClientMessage(e)
	}
}

// raiseFloats re-raises every floating, non-dock window of the current
// workspace above the tiled layout.
func (m *Manager) raiseFloats() {
	for _, w := range m.currentWorkspace().Windows {
		if w.IsFloating && !w.IsDock {
			if err := m.conn.Raise(w.ID); err != nil {
				m.logger.Warn("raise floating window failed", "error", err)
			}
		}
	}
}

// raiseOverlays re-raises floats and the notification stack, per spec.md
// §4.5.1's "so tiled layouts never cover overlays".
func (m *Manager) raiseOverlays() {
	m.raiseFloats()
	m.notifier.Raise()
}

// handleMapRequest implements spec.md §4.5.1's MapRequest handler.
func (m *Manager) handleMapRequest(win xproto.Window) {
	attrs, err := m.conn.QueryWindowAttrs(win)
	if err != nil {
		m.logger.Warn("query window attrs failed", "window", win, "error", err)
		return
	}

	if attrs.IsDock {
		m.manageDock(win, attrs)
		return
	}

	m.conn.GrabGestureButtons(win, m.modifierMask)
	if !m.cfg.Appearance.FocusFollowsMouse {
		m.conn.GrabClickToFocusButton(win)
	}

	rec := &workspace.Record{
		ID: win,
		Geometry: workspace.Geometry{
			X: attrs.Geometry.X, Y: attrs.Geometry.Y,
			Width: attrs.Geometry.Width, Height: attrs.Geometry.Height,
			Border: int(m.cfg.Appearance.BorderWidth),
		},
	}

	if err := m.conn.Map(win); err != nil {
		m.logger.Warn("map failed", "window", win, "error", err)
	}
	if err := m.conn.SetBorderWidth(win, rec.Geometry.Border); err != nil {
		m.logger.Warn("set border width failed", "window", win, "error", err)
	}

	m.currentWorkspace().Add(rec)
	m.tiler.Add(win)
	m.setFocus(win)
	m.raiseOverlays()
}

// manageDock implements spec.md §4.5.1 step 2: a dock is borderless,
// floating, visible in every workspace, mapped and raised immediately, and
// contributes its top-or-bottom placement to the layout engine's strut.
func (m *Manager) manageDock(win xproto.Window, attrs x11.WindowAttrs) {
	rec := &workspace.Record{
		ID: win,
		Geometry: workspace.Geometry{
			X: attrs.Geometry.X, Y: attrs.Geometry.Y,
			Width: attrs.Geometry.Width, Height: attrs.Geometry.Height,
			Border: 0,
		},
		IsDock:     true,
		IsFloating: true,
	}

	for i := range m.workspaces {
		m.workspaces[i].Add(rec)
	}
	m.docks = append(m.docks, rec)

	if err := m.conn.SetBorderWidth(win, 0); err != nil {
		m.logger.Warn("set dock border width failed", "error", err)
	}
	if err := m.conn.Map(win); err != nil {
		m.logger.Warn("map dock failed", "error", err)
	}
	if err := m.conn.Raise(win); err != nil {
		m.logger.Warn("raise dock failed", "error", err)
	}

	m.tiler.UpdateDockSpace(rec.Geometry.Y, rec.Geometry.Height)
	m.notifier.Raise()
}

// handleUnmapNotify implements spec.md §4.5.1's UnmapNotify handler, except
// for the workspace-switch-originated unmaps counted in pendingUnmap
// (spec.md §9's open question): those are expected and must not remove the
// record.
func (m *Manager) handleUnmapNotify(win xproto.Window) {
	if n := m.pendingUnmap[win]; n > 0 {
		if n == 1 {
			delete(m.pendingUnmap, win)
		} else {
			m.pendingUnmap[win] = n - 1
		}
		return
	}
	m.removeWindow(win)
}

// handleDestroyNotify implements spec.md §4.5.1's DestroyNotify handler.
func (m *Manager) handleDestroyNotify(win xproto.Window) {
	delete(m.pendingUnmap, win)
	m.removeWindow(win)
}

// removeWindow drops win from whichever workspace(s) hold it (all ten for a
// dock, exactly one otherwise) and from the layout engine, recomputes the
// dock strut if a dock was removed, and re-raises overlays.
func (m *Manager) removeWindow(win xproto.Window) {
	var removed *workspace.Record
	for i := range m.workspaces {
		if r := m.workspaces[i].Remove(win); r != nil {
			removed = r
		}
	}
	if removed == nil {
		return
	}

	m.tiler.Remove(win)

	if removed.IsDock {
		for i, d := range m.docks {
			if d.ID == win {
				m.docks = append(m.docks[:i], m.docks[i+1:]...)
				break
			}
		}
		if len(m.docks) == 0 {
			m.tiler.UpdateDockSpace(0, 0)
		} else {
			last := m.docks[len(m.docks)-1]
			m.tiler.UpdateDockSpace(last.Geometry.Y, last.Geometry.Height)
		}
	}

	m.raiseOverlays()
}

// handleEnterNotify implements spec.md §4.5.1's EnterNotify handler.
func (m *Manager) handleEnterNotify(win xproto.Window) {
	if m.gesture.active() {
		return
	}
	if win == 0 || win == m.conn.Root {
		return
	}
	if m.notifier.IsNotificationWindow(win) {
		return
	}
	if !m.cfg.Appearance.FocusFollowsMouse {
		return
	}

	rec := m.currentWorkspace().Find(win)
	if rec == nil {
		return
	}

	m.setFocus(win)

	if rec.IsFloating {
		if err := m.conn.Raise(win); err != nil {
			m.logger.Warn("raise failed", "error", err)
		}
	} else {
		m.raiseFloats()
	}
}

// handleButtonPress implements spec.md §4.5.1's ButtonPress handler.
func (m *Manager) handleButtonPress(ev xproto.ButtonPressEvent) {
	if m.notifier.HandleButtonPress(ev) {
		return
	}

	win := ev.Event
	modHeld := ev.State&m.modifierMask == m.modifierMask

	if modHeld {
		rec := m.currentWorkspace().Find(win)
		if rec == nil {
			return
		}
		switch ev.Detail {
		case xproto.ButtonIndex1:
			m.startMove(win, rec)
		case xproto.ButtonIndex3:
			m.startResize(win, rec)
		}
		return
	}

	if !m.cfg.Appearance.FocusFollowsMouse {
		if rec := m.currentWorkspace().Find(win); rec != nil {
			m.setFocus(win)
			if rec.IsFloating {
				if err := m.conn.Raise(win); err != nil {
					m.logger.Warn("raise failed", "error", err)
				}
			} else {
				m.raiseFloats()
			}
		}
		m.conn.ReplayPointer()
	}
}

// handleKeyPress implements spec.md §4.5.1's KeyPress handler.
func (m *Manager) handleKeyPress(ev xproto.KeyPressEvent) {
	action, ok := m.keys.Match(ev.Detail, ev.State)
	if !ok {
		return
	}
	m.execute(action)
}

// handleClientMessage implements spec.md §4.5.1's ClientMessage handler,
// plus the sentinel config-reload message described in spec.md §9.
func (m *Manager) handleClientMessage(ev xproto.ClientMessageEvent) {
	if atom, err := m.conn.CurrentDesktopAtom(); err == nil && ev.Type == atom {
		if data := ev.Data.Data32; len(data) > 0 {
			m.switchWorkspace(int(data[0]))
		}
		return
	}

	if atom, err := m.conn.ConfigReloadAtom(); err == nil && ev.Type == atom {
		m.reloadConfig()
	}
}

// reloadConfig re-reads configuration from configPath and pushes it through
// UpdateConfig, or notifies and keeps the previous configuration on failure
// (spec.md §7's recoverable-configuration-error path).
func (m *Manager) reloadConfig() {
	if m.configPath == "" {
		return
	}
	cfg, _, err := config.Load(m.configPath)
	if err != nil {
		m.logger.Warn("config reload failed", "error", err)
		m.notifier.Notify(fmt.Sprintf("config reload failed: %v", err))
		return
	}
	m.UpdateConfig(cfg)
	m.notifier.Notify("configuration reloaded")
}
