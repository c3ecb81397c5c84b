package layout

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
)

// Backend is the subset of server operations the layout engine needs.
// internal/x11.Connection satisfies it; tests supply a fake.
type Backend interface {
	SelectWindowEvents(win xproto.Window) error
	SetBorderWidth(win xproto.Window, width int) error
	SetBorderColor(win xproto.Window, pixel uint32) error
	MoveResize(win xproto.Window, x, y, w, h int) error
	SetInputFocus(win xproto.Window) error
	Raise(win xproto.Window) error
	Sync()
}

// Config is the subset of appearance configuration the layout engine needs,
// pushed in by the control loop per spec.md §9's one-way-push design note:
// the engine holds a copy, never a reference back to the owner.
type Config struct {
	BorderWidth  int
	Gaps         int
	BorderColor  uint32
	FocusedColor uint32
	MasterRatio  float64
}

// Tiler is the stateful master-stack engine (spec.md §4.2). It tracks the
// tile list in insertion order, the single focused window, and the
// current dock strut, and is the only component that calls MoveResize on
// tiled windows.
type Tiler struct {
	backend Backend
	logger  *slog.Logger

	monitor Rect
	dock    DockStrut
	config  Config

	ids     []xproto.Window
	focused xproto.Window // 0 means no focus
}

// New constructs a Tiler over the given monitor rectangle.
func New(backend Backend, monitor Rect, cfg Config, logger *slog.Logger) *Tiler {
	if cfg.MasterRatio == 0 {
		cfg.MasterRatio = 0.5
	}
	return &Tiler{backend: backend, monitor: monitor, config: cfg, logger: logger}
}

// SetMonitor updates the monitor rectangle the engine tiles over (used when
// the manager re-reads monitor geometry; spec.md's non-goals exclude
// dynamic reconfiguration beyond the initial query, so in practice this is
// called at most once, at startup).
func (t *Tiler) SetMonitor(monitor Rect) {
	t.monitor = monitor
}

// Tiles returns a copy of the current tile list, in insertion order.
func (t *Tiler) Tiles() []xproto.Window {
	out := make([]xproto.Window, len(t.ids))
	copy(out, t.ids)
	return out
}

// Focused returns the currently focused window id, or 0 if none.
func (t *Tiler) Focused() xproto.Window {
	return t.focused
}

// Contains reports whether id is in the tile list.
func (t *Tiler) Contains(id xproto.Window) bool {
	return t.indexOf(id) >= 0
}

func (t *Tiler) indexOf(id xproto.Window) int {
	for i, existing := range t.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// Add configures border width/colour and Enter/Leave/FocusChange input on
// id, reads its current attributes (a no-op here; the caller already holds
// the window record), appends it to the tile list, relayouts, and focuses
// it — spec.md §4.2's Add operation.
func (t *Tiler) Add(id xproto.Window) {
	if t.Contains(id) {
		return
	}

	_ = t.backend.SelectWindowEvents(id)
	_ = t.backend.SetBorderWidth(id, t.config.BorderWidth)
	_ = t.backend.SetBorderColor(id, t.config.BorderColor)

	t.ids = append(t.ids, id)
	t.Relayout()
	t.Focus(id)
}

// Remove drops id from the tile list. If id was focused, focus clears and,
// if another tile remains, moves to the last one not equal to id.
func (t *Tiler) Remove(id xproto.Window) {
	idx := t.indexOf(id)
	if idx < 0 {
		return
	}

	wasFocused := t.focused == id
	t.ids = append(t.ids[:idx], t.ids[idx+1:]...)

	if wasFocused {
		t.focused = 0
		for i := len(t.ids) - 1; i >= 0; i-- {
			if t.ids[i] != id {
				t.Focus(t.ids[i])
				break
			}
		}
	}

	t.Relayout()
}

// Swap exchanges the positions of a and b in the tile list and relayouts.
// Used when a drag gesture passes one tiled window over another
// (spec.md §4.5.1 MotionNotify).
func (t *Tiler) Swap(a, b xproto.Window) {
	ia, ib := t.indexOf(a), t.indexOf(b)
	if ia < 0 || ib < 0 || ia == ib {
		return
	}
	t.ids[ia], t.ids[ib] = t.ids[ib], t.ids[ia]
	t.Relayout()
}

// Focus is idempotent: it restores the previous focused window's normal
// border colour, paints id with the focused colour, sets input focus,
// raises id, and syncs.
func (t *Tiler) Focus(id xproto.Window) {
	if t.focused == id {
		return
	}

	if t.focused != 0 {
		_ = t.backend.SetBorderColor(t.focused, t.config.BorderColor)
	}

	t.focused = id
	if id != 0 {
		_ = t.backend.SetBorderColor(id, t.config.FocusedColor)
		_ = t.backend.SetInputFocus(id)
		_ = t.backend.Raise(id)
	}
	t.backend.Sync()
}

// ClearFocus drops the focused-window slot without selecting a replacement
// and empties the tile list; workspace switch calls it before re-adding the
// new workspace's windows (spec.md §4.5.6).
func (t *Tiler) ClearFocus() {
	t.focused = 0
	t.ids = t.ids[:0]
}

// UpdateConfig re-applies border width/colour to every tile and relayouts
// (spec.md §4.2's update_config).
func (t *Tiler) UpdateConfig(cfg Config) {
	if cfg.MasterRatio == 0 {
		cfg.MasterRatio = t.config.MasterRatio
	}
	t.config = cfg

	for _, id := range t.ids {
		_ = t.backend.SetBorderWidth(id, cfg.BorderWidth)
		color := cfg.BorderColor
		if id == t.focused {
			color = cfg.FocusedColor
		}
		_ = t.backend.SetBorderColor(id, color)
	}
	t.Relayout()
}

// UpdateDockSpace records the dock rectangle (Top if y is in the upper
// half of the monitor, else Bottom) and relayouts (spec.md §4.2).
func (t *Tiler) UpdateDockSpace(y, height int) {
	t.dock = DockStrut{Position: ResolveDockPosition(y, t.monitor.Height), Height: height}
	t.Relayout()
}

// Relayout re-runs the tiling function and issues a move+resize for every
// tile. This is the only place geometry is pushed to the server for tiled
// windows (spec.md §4.2).
func (t *Tiler) Relayout() {
	if len(t.ids) == 0 {
		return
	}

	usable := Usable(t.monitor, t.dock, t.config.Gaps)
	rects := Tile(len(t.ids), usable, t.config.MasterRatio, t.config.Gaps)

	for i, id := range t.ids {
		r := rects[i]
		_ = t.backend.MoveResize(id, r.X, r.Y, r.Width, r.Height)
	}
}
