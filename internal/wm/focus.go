package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/workspace"
)

// currentWorkspace returns the workspace currently displayed.
func (m *Manager) currentWorkspace() *workspace.Workspace {
	return m.workspaces[m.current]
}

// focusedRecord locates the focused window record, unifying
// close_focused_window and toggle_float's precedence (spec.md §9): server
// input focus, then _NET_ACTIVE_WINDOW, then the current workspace's focus
// index.
func (m *Manager) focusedRecord() *workspace.Record {
	ws := m.currentWorkspace()

	if win, err := m.conn.GetInputFocus(); err == nil {
		if r := ws.Find(win); r != nil {
			return r
		}
	}
	if win, err := m.conn.ActiveWindow(); err == nil {
		if r := ws.Find(win); r != nil {
			return r
		}
	}
	return ws.Focused()
}

// setFocus paints id as focused in the layout engine (which also handles the
// previously-focused window's border and raising id), publishes
// _NET_ACTIVE_WINDOW, records the workspace's focus hint, and re-raises
// overlays so they stay above the newly-raised window.
func (m *Manager) setFocus(id xproto.Window) {
	m.tiler.Focus(id)
	if err := m.conn.SetActiveWindow(id); err != nil {
		m.logger.Warn("set active window failed", "error", err)
	}
	m.currentWorkspace().SetFocus(id)
	m.notifier.Raise()
}
