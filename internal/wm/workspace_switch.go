package wm

// switchWorkspace implements spec.md §4.5.6.
func (m *Manager) switchWorkspace(i int) {
	if i == m.current || i < 0 || i >= desktopCount {
		return
	}

	old := m.currentWorkspace()
	for _, w := range old.Windows {
		if w.IsDock {
			continue
		}
		m.pendingUnmap[w.ID]++
		if err := m.conn.Unmap(w.ID); err != nil {
			m.logger.Warn("unmap on workspace switch failed", "error", err)
		}
	}

	m.current = i
	if err := m.conn.SetCurrentDesktop(i); err != nil {
		m.logger.Warn("set current desktop failed", "error", err)
	}
	m.tiler.ClearFocus()

	next := m.currentWorkspace()
	for _, w := range next.Windows {
		if w.IsDock {
			continue
		}

		if err := m.conn.Map(w.ID); err != nil {
			m.logger.Warn("map on workspace switch failed", "error", err)
		}
		if err := m.conn.SetBorderWidth(w.ID, w.Geometry.Border); err != nil {
			m.logger.Warn("set border width on workspace switch failed", "error", err)
		}
		m.conn.GrabGestureButtons(w.ID, m.modifierMask)
		if !m.cfg.Appearance.FocusFollowsMouse {
			m.conn.GrabClickToFocusButton(w.ID)
		}

		if w.IsFloating {
			if err := m.conn.MoveResize(w.ID, w.Geometry.X, w.Geometry.Y, w.Geometry.Width, w.Geometry.Height); err != nil {
				m.logger.Warn("restore floating geometry on workspace switch failed", "error", err)
			}
		} else {
			m.tiler.Add(w.ID)
		}
	}

	if focused := next.Focused(); focused != nil && !focused.IsDock {
		m.setFocus(focused.ID)
	}

	m.tiler.Relayout()
	m.notifier.Raise()
	m.conn.Sync()
}
