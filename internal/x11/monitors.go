package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Rect is a monitor or strut rectangle in root coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Monitors queries Xinerama once and returns every active screen. The first
// entry is the layout target (spec.md §3); the rest are consulted only to
// locate the pointer for centring floats and computing fullscreen bounds.
func (c *Connection) Monitors() ([]Rect, error) {
	if err := xinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("xinerama init: %w", err)
	}

	reply, err := xinerama.QueryScreens(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("xinerama query screens: %w", err)
	}

	rects := make([]Rect, 0, len(reply.ScreenInfo))
	for _, s := range reply.ScreenInfo {
		rects = append(rects, Rect{
			X: int(s.XOrg), Y: int(s.YOrg),
			Width: int(s.Width), Height: int(s.Height),
		})
	}
	if len(rects) == 0 {
		geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
		if err != nil {
			return nil, fmt.Errorf("no xinerama screens and root geometry failed: %w", err)
		}
		rects = []Rect{{X: int(geom.X), Y: int(geom.Y), Width: int(geom.Width), Height: int(geom.Height)}}
	}
	return rects, nil
}

// MonitorContainingPoint returns the monitor whose rectangle contains
// (x, y), falling back to monitors[0] — "screen 0" per spec.md §4.5.3.
func MonitorContainingPoint(monitors []Rect, x, y int) Rect {
	for _, m := range monitors {
		if x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height {
			return m
		}
	}
	if len(monitors) > 0 {
		return monitors[0]
	}
	return Rect{}
}
