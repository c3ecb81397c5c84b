// Package workspace holds the per-desktop window list and the per-window
// bookkeeping described in spec.md §3.
package workspace

import "github.com/BurntSushi/xgb/xproto"

// Geometry is a window rectangle plus border width.
type Geometry struct {
	X, Y, Width, Height int
	Border              int
}

// Record is the manager's per-client bookkeeping (spec.md §3 "Window
// record"). Its identity (ID) is fixed for the record's lifetime; it is
// created on MapRequest and destroyed on DestroyNotify, or on an UnmapNotify
// the manager did not itself originate.
type Record struct {
	ID xproto.Window

	Geometry Geometry

	// PreFloat is valid only while IsFloating is set. It is saved from the
	// tile when the window becomes floating (with X/Y replaced by the
	// centred position when center_on_float applies), updated at the end of
	// each move/resize gesture, and copied into Geometry when the window
	// returns to the tile list.
	PreFloat Geometry
	// PreFullscreen is valid only while IsFullscreen is set.
	PreFullscreen Geometry

	IsFloating   bool
	IsFullscreen bool
	// IsDock implies IsFloating, never tiled, and never re-parented
	// between workspaces (spec.md §3).
	IsDock bool
}
