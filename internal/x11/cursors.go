package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// cursorSet holds the two cursor glyphs the control loop swaps between: the
// idle arrow and the gesture ("grabbing") cursor used during move/resize.
type cursorSet struct {
	Normal   xproto.Cursor
	Grabbing xproto.Cursor
}

func newCursorSet(xu *xgbutil.XUtil) (cursorSet, error) {
	normal, err := xcursor.CreateCursor(xu, xcursor.LeftPtr)
	if err != nil {
		return cursorSet{}, err
	}
	grabbing, err := xcursor.CreateCursor(xu, xcursor.Fleur)
	if err != nil {
		return cursorSet{}, err
	}
	return cursorSet{Normal: normal, Grabbing: grabbing}, nil
}

func freeCursorSet(xu *xgbutil.XUtil, c cursorSet) {
	xproto.FreeCursor(xu.Conn(), c.Normal)
	xproto.FreeCursor(xu.Conn(), c.Grabbing)
}

// SetRootCursor sets the root window's idle cursor.
func (c *Connection) SetRootCursor() error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(), c.Root, xproto.CwCursor, []uint32{uint32(c.cursors.Normal)},
	).Check()
}

// SetWindowCursor sets win's cursor to the gesture ("grabbing") glyph if
// grabbing is true, or back to the idle arrow otherwise. Used when starting
// and ending a move/resize gesture (spec.md §4.5.2).
func (c *Connection) SetWindowCursor(win xproto.Window, grabbing bool) error {
	cur := c.cursors.Normal
	if grabbing {
		cur = c.cursors.Grabbing
	}
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(), win, xproto.CwCursor, []uint32{uint32(cur)},
	).Check()
}
