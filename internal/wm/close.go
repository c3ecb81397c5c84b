package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/workspace"
)

// closeFocusedWindow implements spec.md §4.5.5: the ICCCM polite-close
// protocol, followed by selecting the next focus candidate. The closed
// record itself is removed later by the UnmapNotify/DestroyNotify handler
// that the close request provokes.
func (m *Manager) closeFocusedWindow() {
	rec := m.focusedRecord()
	if rec == nil || rec.IsDock {
		return
	}

	if m.conn.SupportsDeleteWindow(rec.ID) {
		if err := m.conn.SendDeleteWindow(rec.ID); err != nil {
			m.logger.Warn("send WM_DELETE_WINDOW failed", "error", err)
		}
	} else {
		if err := m.conn.Destroy(rec.ID); err != nil {
			m.logger.Warn("destroy window failed", "error", err)
		}
	}
	m.conn.Sync()

	ws := m.currentWorkspace()

	var next *workspace.Record
	if rec.IsFloating {
		next = lastMatching(ws, rec.ID, func(r *workspace.Record) bool { return r.IsFloating && !r.IsDock })
	}
	if next == nil {
		next = lastMatching(ws, rec.ID, func(r *workspace.Record) bool { return !r.IsFloating && !r.IsDock })
	}
	if next != nil {
		m.setFocus(next.ID)
	}
}

// lastMatching returns the last window in ws, other than exclude, for which
// pred holds, or nil.
func lastMatching(ws *workspace.Workspace, exclude xproto.Window, pred func(*workspace.Record) bool) *workspace.Record {
	for i := len(ws.Windows) - 1; i >= 0; i-- {
		w := ws.Windows[i]
		if w.ID != exclude && pred(w) {
			return w
		}
	}
	return nil
}
