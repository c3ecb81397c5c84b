package wm

import (
	"github.com/tilewm/tilewm/internal/workspace"
	"github.com/tilewm/tilewm/internal/x11"
)

// toggleFloat implements spec.md §4.5.3.
func (m *Manager) toggleFloat() {
	rec := m.focusedRecord()
	if rec == nil || rec.IsDock {
		return
	}

	if rec.IsFloating {
		rec.IsFloating = false
		rec.Geometry = rec.PreFloat
		m.tiler.Add(rec.ID)
	} else {
		rec.IsFloating = true

		// The tiler only ever issues MoveResize on the server; it never
		// writes the computed geometry back into rec, so rec.Geometry is
		// stale for a tiled window (still its map-time size). Query the
		// live geometry here so PreFloat reflects the current tile, not
		// the window's size when it first mapped.
		if attrs, err := m.conn.QueryWindowAttrs(rec.ID); err == nil {
			rec.PreFloat = workspace.Geometry{
				X: attrs.Geometry.X, Y: attrs.Geometry.Y,
				Width: attrs.Geometry.Width, Height: attrs.Geometry.Height,
				Border: attrs.Geometry.Border,
			}
		} else if x, y, err := m.conn.TranslateToRoot(rec.ID, 0, 0); err == nil {
			rec.PreFloat = workspace.Geometry{
				X: x, Y: y,
				Width: rec.Geometry.Width, Height: rec.Geometry.Height,
				Border: rec.Geometry.Border,
			}
		} else {
			rec.PreFloat = rec.Geometry
		}

		if m.cfg.Appearance.Floating.CenterOnFloat {
			px, py, _ := m.conn.QueryPointer()
			mon := x11.MonitorContainingPoint(m.monitors, px, py)
			w := int(m.cfg.Appearance.Floating.Width)
			h := int(m.cfg.Appearance.Floating.Height)
			x := mon.X + (mon.Width-w)/2
			y := mon.Y + (mon.Height-h)/2

			if err := m.conn.MoveResize(rec.ID, x, y, w, h); err != nil {
				m.logger.Warn("center float failed", "error", err)
			} else {
				rec.Geometry = workspace.Geometry{X: x, Y: y, Width: w, Height: h, Border: rec.Geometry.Border}
				rec.PreFloat.X, rec.PreFloat.Y = x, y
			}
		}

		m.tiler.Remove(rec.ID)
	}

	if err := m.conn.Raise(rec.ID); err != nil {
		m.logger.Warn("raise failed", "error", err)
	}
	if err := m.conn.SetInputFocus(rec.ID); err != nil {
		m.logger.Warn("set input focus failed", "error", err)
	}
	m.setFocus(rec.ID)
	m.conn.Sync()
}
