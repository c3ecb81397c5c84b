package layout

import "testing"

func intersects(a, b Rect) bool {
	if a.Width <= 0 || a.Height <= 0 || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func within(outer, inner Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.Width <= outer.X+outer.Width &&
		inner.Y+inner.Height <= outer.Y+outer.Height
}

// TestTileDisjointAndBounded covers spec.md §8's property: for n in [0,20],
// tiles are pairwise disjoint and lie inside the usable rectangle.
func TestTileDisjointAndBounded(t *testing.T) {
	for _, wh := range [][2]int{{200, 200}, {1920, 1080}, {333, 777}} {
		for gaps := 0; gaps <= 32; gaps += 8 {
			for n := 0; n <= 20; n++ {
				usable := Usable(Rect{X: 0, Y: 0, Width: wh[0], Height: wh[1]}, DockStrut{}, gaps)
				rects := Tile(n, usable, 0.5, gaps)
				if len(rects) != n {
					t.Fatalf("Tile(%d) returned %d rects", n, len(rects))
				}
				for i, r := range rects {
					if !within(usable, r) {
						t.Errorf("n=%d gaps=%d: tile %d %+v not within usable %+v", n, gaps, i, r, usable)
					}
					for j := i + 1; j < len(rects); j++ {
						if intersects(r, rects[j]) {
							t.Errorf("n=%d gaps=%d: tiles %d and %d overlap: %+v %+v", n, gaps, i, j, r, rects[j])
						}
					}
				}
			}
		}
	}
}

func TestTileSingleFillsUsable(t *testing.T) {
	usable := Usable(Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, DockStrut{}, 8)
	rects := Tile(1, usable, 0.5, 8)
	if len(rects) != 1 || rects[0] != usable {
		t.Fatalf("Tile(1) = %+v, want single rect equal to usable %+v", rects, usable)
	}
}

func TestTileMasterWidthBounds(t *testing.T) {
	usable := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	for n := 2; n <= 20; n++ {
		for _, ratio := range []float64{0.1, 1.0 / 3.0, 0.5, 2.0 / 3.0, 0.9} {
			rects := Tile(n, usable, ratio, 8)
			master := rects[0]
			lo := usable.Width / 3
			hi := (2 * usable.Width) / 3
			if master.Width < lo || master.Width > hi {
				t.Errorf("n=%d ratio=%v: master width %d outside [%d, %d]", n, ratio, master.Width, lo, hi)
			}
		}
	}
}

// TestTileRoundingSlack covers spec.md §8's "union plus gaps equals usable up
// to n px slack": the stack column's total height (tiles plus inter-tile
// gaps) must equal the usable height exactly, for any n.
func TestTileRoundingSlack(t *testing.T) {
	usable := Rect{X: 0, Y: 0, Width: 1920, Height: 1079}
	for n := 2; n <= 20; n++ {
		rects := Tile(n, usable, 0.5, 8)
		last := rects[len(rects)-1]
		gotBottom := last.Y + last.Height
		wantBottom := usable.Y + usable.Height
		if gotBottom != wantBottom {
			t.Errorf("n=%d: stack bottom %d, want %d", n, gotBottom, wantBottom)
		}
	}
}

func TestUsableSubtractsDockAndGaps(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	u := Usable(monitor, DockStrut{Position: DockTop, Height: 30}, 8)
	want := Rect{X: 8, Y: 38, Width: 1904, Height: 1034}
	if u != want {
		t.Fatalf("Usable = %+v, want %+v", u, want)
	}
}

func TestResolveDockPosition(t *testing.T) {
	if got := ResolveDockPosition(10, 1080); got != DockTop {
		t.Errorf("ResolveDockPosition(10, 1080) = %v, want DockTop", got)
	}
	if got := ResolveDockPosition(1000, 1080); got != DockBottom {
		t.Errorf("ResolveDockPosition(1000, 1080) = %v, want DockBottom", got)
	}
}
