package layout

import (
	"io"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

type fakeBackend struct {
	borderColor map[xproto.Window]uint32
	geometry    map[xproto.Window]Rect
	focused     xproto.Window
	raised      []xproto.Window
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		borderColor: make(map[xproto.Window]uint32),
		geometry:    make(map[xproto.Window]Rect),
	}
}

func (f *fakeBackend) SelectWindowEvents(xproto.Window) error { return nil }
func (f *fakeBackend) SetBorderWidth(xproto.Window, int) error { return nil }
func (f *fakeBackend) SetBorderColor(win xproto.Window, pixel uint32) error {
	f.borderColor[win] = pixel
	return nil
}
func (f *fakeBackend) MoveResize(win xproto.Window, x, y, w, h int) error {
	f.geometry[win] = Rect{X: x, Y: y, Width: w, Height: h}
	return nil
}
func (f *fakeBackend) SetInputFocus(win xproto.Window) error {
	f.focused = win
	return nil
}
func (f *fakeBackend) Raise(win xproto.Window) error {
	f.raised = append(f.raised, win)
	return nil
}
func (f *fakeBackend) Sync() {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTilerAddFocusesAndRelayouts(t *testing.T) {
	be := newFakeBackend()
	tiler := New(be, Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Config{BorderWidth: 2, Gaps: 8, BorderColor: 1, FocusedColor: 2}, testLogger())

	tiler.Add(10)
	if tiler.Focused() != 10 {
		t.Fatalf("Focused() = %d, want 10", tiler.Focused())
	}
	if be.borderColor[10] != 2 {
		t.Fatalf("border colour for focused window = %d, want 2", be.borderColor[10])
	}
	if be.geometry[10].Width != 1904 {
		t.Fatalf("single tile width = %d, want 1904", be.geometry[10].Width)
	}

	tiler.Add(20)
	if tiler.Focused() != 20 {
		t.Fatalf("Focused() after second add = %d, want 20", tiler.Focused())
	}
	if be.borderColor[10] != 1 {
		t.Fatalf("border colour for unfocused window = %d, want 1", be.borderColor[10])
	}
}

func TestTilerSwapIsInvolutive(t *testing.T) {
	be := newFakeBackend()
	tiler := New(be, Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Config{Gaps: 8}, testLogger())
	tiler.Add(10)
	tiler.Add(20)
	tiler.Add(30)

	before := append([]xproto.Window(nil), tiler.Tiles()...)
	tiler.Swap(10, 30)
	tiler.Swap(10, 30)
	after := tiler.Tiles()

	if len(before) != len(after) {
		t.Fatalf("tile count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("swap(a,b); swap(a,b) not identity at index %d: %d vs %d", i, before[i], after[i])
		}
	}
}

func TestTilerAddRemoveIsIdentity(t *testing.T) {
	be := newFakeBackend()
	tiler := New(be, Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Config{Gaps: 8}, testLogger())
	tiler.Add(10)
	tiler.Add(20)

	before := append([]xproto.Window(nil), tiler.Tiles()...)
	tiler.Add(99)
	tiler.Remove(99)
	after := tiler.Tiles()

	if len(before) != len(after) {
		t.Fatalf("add(x); remove(x) changed tile count: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("add(x); remove(x) not identity at index %d", i)
		}
	}
}

func TestTilerRemoveRefocusesLastRemaining(t *testing.T) {
	be := newFakeBackend()
	tiler := New(be, Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Config{Gaps: 8}, testLogger())
	tiler.Add(10)
	tiler.Add(20)
	tiler.Add(30)
	tiler.Focus(30)

	tiler.Remove(30)
	if tiler.Focused() != 20 {
		t.Fatalf("Focused() after removing focused window = %d, want 20", tiler.Focused())
	}
}

func TestTilerFocusWorksForNonMember(t *testing.T) {
	be := newFakeBackend()
	tiler := New(be, Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Config{FocusedColor: 7}, testLogger())
	tiler.Focus(999)
	if tiler.Focused() != 999 {
		t.Fatalf("Focused() = %d, want 999", tiler.Focused())
	}
	if be.borderColor[999] != 7 {
		t.Fatalf("floating window should still receive focused border colour")
	}
}
