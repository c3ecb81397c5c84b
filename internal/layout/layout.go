// Package layout implements the master-stack tiling engine (spec.md §4.2):
// a deterministic function from (tile list, monitor geometry, gaps/border
// configuration, dock strut) to per-window geometry, plus the incremental
// operations that preserve its invariants.
package layout

// Rect is a plain rectangle in root coordinates.
type Rect struct {
	X, Y, Width, Height int
}

const (
	minMasterRatio = 1.0 / 3.0
	maxMasterRatio = 2.0 / 3.0
)

// clampRatio clamps the master ratio to [1/3, 2/3] per spec.md §4.2.
func clampRatio(r float64) float64 {
	switch {
	case r < minMasterRatio:
		return minMasterRatio
	case r > maxMasterRatio:
		return maxMasterRatio
	default:
		return r
	}
}

// Usable subtracts a dock strut and outer gaps from a monitor rectangle,
// returning the rectangle the tiling function actually divides.
func Usable(monitor Rect, dock DockStrut, gaps int) Rect {
	u := monitor
	switch dock.Position {
	case DockTop:
		u.Y += dock.Height
		u.Height -= dock.Height
	case DockBottom:
		u.Height -= dock.Height
	}

	u.X += gaps
	u.Y += gaps
	u.Width -= 2 * gaps
	u.Height -= 2 * gaps

	if u.Width < 0 {
		u.Width = 0
	}
	if u.Height < 0 {
		u.Height = 0
	}
	return u
}

// Tile computes the n-window master-stack partition of usable, per
// spec.md §4.2:
//
//   - n == 0: no tiles.
//   - n == 1: the window fills usable.
//   - n >= 2: the master (first window) occupies the left column of width
//     floor(W*ratio); the remaining n-1 windows occupy the right column,
//     stacked vertically with inter-window gap g, each of height
//     floor((H - g*(n-2)) / (n-1)). The last stack window takes whatever
//     height remains; stack windows that do not fit below the gaps get
//     zero height at the bottom edge, so every tile stays inside usable.
func Tile(n int, usable Rect, ratio float64, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{usable}
	}

	ratio = clampRatio(ratio)
	masterWidth := int(float64(usable.Width) * ratio)
	stackWidth := usable.Width - masterWidth - gap
	if stackWidth < 0 {
		stackWidth = 0
	}

	rects := make([]Rect, n)
	rects[0] = Rect{X: usable.X, Y: usable.Y, Width: masterWidth, Height: usable.Height}

	stackCount := n - 1
	stackHeight := (usable.Height - gap*(stackCount-1)) / stackCount
	if stackHeight < 0 {
		stackHeight = 0
	}
	stackX := usable.X + masterWidth + gap

	bottom := usable.Y + usable.Height
	y := usable.Y
	for i := 0; i < stackCount; i++ {
		// When the gaps alone exceed the column height, the tiles that do
		// not fit collapse to zero height at the bottom edge instead of
		// being placed below usable.
		if y > bottom {
			y = bottom
		}
		h := stackHeight
		if i == stackCount-1 || y+h > bottom {
			// Give the last stack window whatever remains, absorbing
			// integer-division slack so the column fills usable exactly.
			h = bottom - y
		}
		rects[i+1] = Rect{X: stackX, Y: y, Width: stackWidth, Height: h}
		y += stackHeight + gap
	}

	return rects
}

// DockPosition classifies which edge a dock strut reserves.
type DockPosition int

const (
	DockNone DockPosition = iota
	DockTop
	DockBottom
)

// DockStrut is the reserved rectangle a mapped dock window contributes.
type DockStrut struct {
	Position DockPosition
	Height   int
}

// ResolveDockPosition classifies a dock's y coordinate against the
// monitor height, per spec.md §4.2 update_dock_space: Top if
// y < monitorHeight/2, else Bottom.
func ResolveDockPosition(y, monitorHeight int) DockPosition {
	if y < monitorHeight/2 {
		return DockTop
	}
	return DockBottom
}
