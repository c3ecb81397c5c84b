package wm

import (
	"github.com/tilewm/tilewm/internal/workspace"
	"github.com/tilewm/tilewm/internal/x11"
)

// toggleFullscreen implements spec.md §4.5.4. It requires the pointer to be
// over a managed, non-root window; focused-window precedence does not apply
// here.
func (m *Manager) toggleFullscreen() {
	win, err := m.conn.WindowUnderPointer()
	if err != nil || win == 0 || win == m.conn.Root {
		return
	}
	rec := m.currentWorkspace().Find(win)
	if rec == nil || rec.IsDock {
		return
	}

	if rec.IsFullscreen {
		rec.IsFullscreen = false
		rec.Geometry = rec.PreFullscreen

		if err := m.conn.SetBorderWidth(rec.ID, rec.Geometry.Border); err != nil {
			m.logger.Warn("restore border width failed", "error", err)
		}
		if rec.IsFloating {
			if err := m.conn.MoveResize(rec.ID, rec.Geometry.X, rec.Geometry.Y, rec.Geometry.Width, rec.Geometry.Height); err != nil {
				m.logger.Warn("restore geometry failed", "error", err)
			}
		} else {
			m.tiler.Relayout()
		}
		return
	}

	px, py, _ := m.conn.QueryPointer()
	mon := x11.MonitorContainingPoint(m.monitors, px, py)

	rec.PreFullscreen = rec.Geometry
	rec.IsFullscreen = true

	if err := m.conn.SetBorderWidth(rec.ID, 0); err != nil {
		m.logger.Warn("set border width failed", "error", err)
	}
	if err := m.conn.MoveResize(rec.ID, mon.X, mon.Y, mon.Width, mon.Height); err != nil {
		m.logger.Warn("fullscreen resize failed", "error", err)
	}
	rec.Geometry = workspace.Geometry{X: mon.X, Y: mon.Y, Width: mon.Width, Height: mon.Height, Border: 0}

	if err := m.conn.Raise(rec.ID); err != nil {
		m.logger.Warn("raise failed", "error", err)
	}
}
