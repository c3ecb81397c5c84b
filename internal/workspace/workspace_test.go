package workspace

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func rec(id int) *Record {
	return &Record{ID: xproto.Window(id)}
}

func TestAddSetsFocus(t *testing.T) {
	ws := New("Workspace 1")
	w := rec(1)
	ws.Add(w)
	if ws.Focused() != w {
		t.Fatalf("Focused() after Add = %v, want %v", ws.Focused(), w)
	}
}

func TestRemoveReducesCountOnlyIfPresent(t *testing.T) {
	ws := New("Workspace 1")
	ws.Add(rec(1))
	ws.Add(rec(2))

	before := len(ws.Windows)
	if got := ws.Remove(xproto.Window(99)); got != nil {
		t.Fatalf("Remove of absent id returned %v, want nil", got)
	}
	if len(ws.Windows) != before {
		t.Fatalf("Remove of absent id changed count: %d -> %d", before, len(ws.Windows))
	}

	if got := ws.Remove(xproto.Window(1)); got == nil {
		t.Fatalf("Remove of present id returned nil")
	}
	if len(ws.Windows) != before-1 {
		t.Fatalf("Remove of present id: count = %d, want %d", len(ws.Windows), before-1)
	}
}

func TestRemoveFocusedLeavesNonEmptyFocused(t *testing.T) {
	ws := New("Workspace 1")
	ws.Add(rec(1))
	ws.Add(rec(2))
	ws.Add(rec(3))
	ws.SetFocus(xproto.Window(3))

	ws.Remove(xproto.Window(3))
	if ws.Focused() == nil {
		t.Fatalf("Focused() is nil after removing the focused element from a non-empty list")
	}
}

func TestRemoveLastLeavesNoFocus(t *testing.T) {
	ws := New("Workspace 1")
	ws.Add(rec(1))
	ws.Remove(xproto.Window(1))
	if ws.Focused() != nil {
		t.Fatalf("Focused() = %v after removing the only window, want nil", ws.Focused())
	}
}

func TestFindAndSetFocus(t *testing.T) {
	ws := New("Workspace 1")
	ws.Add(rec(1))
	ws.Add(rec(2))

	ws.SetFocus(xproto.Window(1))
	if ws.Focused().ID != xproto.Window(1) {
		t.Fatalf("SetFocus did not move focus to id 1")
	}

	// SetFocus on an absent id is a no-op.
	ws.SetFocus(xproto.Window(404))
	if ws.Focused().ID != xproto.Window(1) {
		t.Fatalf("SetFocus on an absent id moved focus")
	}

	if ws.Find(xproto.Window(2)) == nil {
		t.Fatalf("Find did not locate a present id")
	}
	if ws.Find(xproto.Window(404)) != nil {
		t.Fatalf("Find located an absent id")
	}
}
