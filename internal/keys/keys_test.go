package keys

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestModifierMaskSingleTokens(t *testing.T) {
	cases := map[string]uint16{
		"alt":     xproto.ModMask1,
		"ctrl":    xproto.ModMaskControl,
		"control": xproto.ModMaskControl,
		"shift":   xproto.ModMaskShift,
		"super":   xproto.ModMask4,
		"win":     xproto.ModMask4,
	}
	for s, want := range cases {
		if got := ModifierMask(s); got != want {
			t.Errorf("ModifierMask(%q) = %#x, want %#x", s, got, want)
		}
	}
}

func TestModifierMaskCombinations(t *testing.T) {
	got := ModifierMask("alt+shift")
	want := xproto.ModMask1 | xproto.ModMaskShift
	if got != want {
		t.Errorf("ModifierMask(%q) = %#x, want %#x", "alt+shift", got, want)
	}

	got = ModifierMask("Super+Ctrl")
	want = xproto.ModMask4 | xproto.ModMaskControl
	if got != want {
		t.Errorf("ModifierMask(%q) = %#x, want %#x", "Super+Ctrl", got, want)
	}
}

func TestModifierMaskDefaultsToAlt(t *testing.T) {
	for _, s := range []string{"", "   ", "nonsense", "meta+frob"} {
		if got := ModifierMask(s); got != xproto.ModMask1 {
			t.Errorf("ModifierMask(%q) = %#x, want ModMask1 (default)", s, got)
		}
	}
}

func TestModifierMaskWhitespaceTolerant(t *testing.T) {
	got := ModifierMask(" alt + shift ")
	want := xproto.ModMask1 | xproto.ModMaskShift
	if got != want {
		t.Errorf("ModifierMask with surrounding whitespace = %#x, want %#x", got, want)
	}
}
