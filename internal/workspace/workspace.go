package workspace

import "github.com/BurntSushi/xgb/xproto"

// Workspace is an ordered list of window records plus an optional focus
// index (spec.md §4.3). It holds no server connection and performs no
// protocol I/O — it is pure bookkeeping the control loop drives.
type Workspace struct {
	Name    string
	Windows []*Record
	// focusIndex is -1 when no window is focused.
	focusIndex int
}

// New constructs an empty, unfocused workspace with the given display name.
func New(name string) *Workspace {
	return &Workspace{Name: name, focusIndex: -1}
}

// Add appends w and sets the focus to its new, last index.
func (ws *Workspace) Add(w *Record) {
	ws.Windows = append(ws.Windows, w)
	ws.focusIndex = len(ws.Windows) - 1
}

// Remove locates a record by id and drops it. If the removed index was
// focused, the new focus becomes max(0, idx-1) if any windows remain, or
// no focus otherwise. Returns the removed record, or nil if id was absent.
func (ws *Workspace) Remove(id xproto.Window) *Record {
	idx := ws.indexOf(id)
	if idx < 0 {
		return nil
	}

	removed := ws.Windows[idx]
	ws.Windows = append(ws.Windows[:idx], ws.Windows[idx+1:]...)

	switch {
	case len(ws.Windows) == 0:
		ws.focusIndex = -1
	case idx == ws.focusIndex:
		next := idx - 1
		if next < 0 {
			next = 0
		}
		ws.focusIndex = next
	case idx < ws.focusIndex:
		ws.focusIndex--
	}

	return removed
}

// Focused returns the record at the focus index, or nil if none.
func (ws *Workspace) Focused() *Record {
	if ws.focusIndex < 0 || ws.focusIndex >= len(ws.Windows) {
		return nil
	}
	return ws.Windows[ws.focusIndex]
}

// SetFocus moves the focus index to the record with the given id, if
// present, without otherwise mutating the list. The control loop calls it on
// every focus change to keep the workspace's focus hint current.
func (ws *Workspace) SetFocus(id xproto.Window) {
	if idx := ws.indexOf(id); idx >= 0 {
		ws.focusIndex = idx
	}
}

// Find returns the record with the given id, or nil.
func (ws *Workspace) Find(id xproto.Window) *Record {
	if idx := ws.indexOf(id); idx >= 0 {
		return ws.Windows[idx]
	}
	return nil
}

func (ws *Workspace) indexOf(id xproto.Window) int {
	for i, w := range ws.Windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}
