package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/workspace"
)

const minGestureSize = 100

// startMove begins a move gesture on win (spec.md §4.5.2): query the
// pointer, remember the window's current origin, set the grabbing cursor,
// focus the window, and mark the gesture active.
func (m *Manager) startMove(win xproto.Window, rec *workspace.Record) {
	x, y, err := m.conn.QueryPointer()
	if err != nil {
		m.logger.Warn("query pointer failed", "error", err)
		return
	}
	m.gesture = gesture{
		dragging: true,
		window:   win,
		startX:   x,
		startY:   y,
		originX:  rec.Geometry.X,
		originY:  rec.Geometry.Y,
	}
	if err := m.conn.SetWindowCursor(win, true); err != nil {
		m.logger.Warn("set grabbing cursor failed", "error", err)
	}
	m.setFocus(win)
}

// startResize begins a resize gesture on win.
func (m *Manager) startResize(win xproto.Window, rec *workspace.Record) {
	x, y, err := m.conn.QueryPointer()
	if err != nil {
		m.logger.Warn("query pointer failed", "error", err)
		return
	}
	m.gesture = gesture{
		resizing: true,
		window:   win,
		startX:   x,
		startY:   y,
		startW:   rec.Geometry.Width,
		startH:   rec.Geometry.Height,
	}
	if err := m.conn.SetWindowCursor(win, true); err != nil {
		m.logger.Warn("set grabbing cursor failed", "error", err)
	}
	m.setFocus(win)
}

// endGesture ends whichever gesture is active: restores the normal cursor
// and, if the gesture window is floating, persists its current geometry
// into pre_float so a later toggle-float round-trip preserves it
// (spec.md §4.5.2).
func (m *Manager) endGesture() {
	if !m.gesture.active() {
		return
	}
	win := m.gesture.window

	if err := m.conn.SetWindowCursor(win, false); err != nil {
		m.logger.Warn("restore cursor failed", "error", err)
	}

	if rec := m.currentWorkspace().Find(win); rec != nil && rec.IsFloating {
		rec.PreFloat = rec.Geometry
	}

	m.gesture.clear()
}

// handleMotion implements spec.md §4.5.1's MotionNotify dispatch.
func (m *Manager) handleMotion(ev xproto.MotionNotifyEvent) {
	switch {
	case m.gesture.dragging:
		m.handleDragMotion(ev)
	case m.gesture.resizing:
		m.handleResizeMotion(ev)
	default:
		m.handleIdleMotion(ev)
	}
}

func (m *Manager) handleDragMotion(ev xproto.MotionNotifyEvent) {
	ws := m.currentWorkspace()
	rec := ws.Find(m.gesture.window)
	if rec == nil {
		return
	}

	if rec.IsFloating {
		dx := int(ev.RootX) - m.gesture.startX
		dy := int(ev.RootY) - m.gesture.startY
		x := m.gesture.originX + dx
		y := m.gesture.originY + dy

		if err := m.conn.MoveResize(rec.ID, x, y, rec.Geometry.Width, rec.Geometry.Height); err != nil {
			m.logger.Warn("move failed", "error", err)
			return
		}
		rec.Geometry.X, rec.Geometry.Y = x, y
		if err := m.conn.Raise(rec.ID); err != nil {
			m.logger.Warn("raise failed", "error", err)
		}
		return
	}

	under, err := m.conn.WindowUnderPointer()
	if err != nil || under == 0 || under == m.gesture.window {
		return
	}
	if !m.tiler.Contains(under) {
		return
	}
	m.tiler.Swap(m.gesture.window, under)
}

func (m *Manager) handleResizeMotion(ev xproto.MotionNotifyEvent) {
	rec := m.currentWorkspace().Find(m.gesture.window)
	if rec == nil || !rec.IsFloating {
		return
	}

	dx := int(ev.RootX) - m.gesture.startX
	dy := int(ev.RootY) - m.gesture.startY
	w := m.gesture.startW + dx
	h := m.gesture.startH + dy
	if w < minGestureSize {
		w = minGestureSize
	}
	if h < minGestureSize {
		h = minGestureSize
	}

	if err := m.conn.MoveResize(rec.ID, rec.Geometry.X, rec.Geometry.Y, w, h); err != nil {
		m.logger.Warn("resize failed", "error", err)
		return
	}
	rec.Geometry.Width, rec.Geometry.Height = w, h
}

func (m *Manager) handleIdleMotion(ev xproto.MotionNotifyEvent) {
	if !m.cfg.Appearance.FocusFollowsMouse {
		return
	}
	win := xproto.Window(ev.Event)
	if win == 0 || win == m.conn.Root {
		return
	}
	if m.notifier.IsNotificationWindow(win) {
		return
	}
	if m.currentWorkspace().Find(win) == nil {
		return
	}
	m.setFocus(win)
}
