// Package keys resolves the textual key and modifier names used in
// configuration into X keysyms/keycodes and modifier masks, and owns the
// grab/ungrab bookkeeping described in spec.md §4.4.
package keys

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/tilewm/tilewm/internal/command"
	"github.com/tilewm/tilewm/internal/config"
)

// ModifierMask parses a '+'-separated modifier string ("alt", "ctrl",
// "shift", "super"/"win") into an OR'd X modifier mask. An empty or
// unrecognized string defaults to Mod1 (alt), per spec.md §4.4.
func ModifierMask(s string) uint16 {
	tokens := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")

	var mask uint16
	matched := false
	for _, tok := range tokens {
		switch strings.TrimSpace(tok) {
		case "alt":
			mask |= xproto.ModMask1
			matched = true
		case "ctrl", "control":
			mask |= xproto.ModMaskControl
			matched = true
		case "shift":
			mask |= xproto.ModMaskShift
			matched = true
		case "super", "win":
			mask |= xproto.ModMask4
			matched = true
		}
	}
	if !matched {
		return xproto.ModMask1
	}
	return mask
}

// Bind pairs a resolved keycode with the action it triggers. The modifier
// mask is global across all binds (spec.md §4.4's single `modifier` field).
type Bind struct {
	Keycode xproto.Keycode
	Action  command.Action
}

// lockMasks are the modifiers we grab alongside every real combination so
// that CapsLock/NumLock being engaged doesn't defeat a keybind. Grounded on
// the teacher's internal/hotkeys.Handler configureIgnoreMods, generalized
// from xevent.IgnoreMods (which only helps keybind.Connect-based grabs) to
// explicit repeated xproto.GrabKey calls, since the control loop here does
// its own KeyPress matching instead of delegating to keybind callbacks.
var lockMasks = []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}

// Resolver owns the active set of key grabs and answers KeyPress matches.
type Resolver struct {
	xu       *xgbutil.XUtil
	root     xproto.Window
	modifier uint16
	binds    []Bind
}

// NewResolver wraps an xgbutil connection. keybind.Initialize must already
// have been called on xu (internal/x11.Connection does this at startup).
func NewResolver(xu *xgbutil.XUtil, root xproto.Window) *Resolver {
	return &Resolver{xu: xu, root: root}
}

// Regrab ungrabs every key currently grabbed on the root window and
// re-grabs each configured bind's (modifier, keycode), per spec.md §4.4's
// "at startup and on config reload" rule. Binds naming an unresolvable key
// name are skipped rather than failing the whole set.
func (r *Resolver) Regrab(cfg *config.Config) []error {
	xproto.UngrabKey(r.xu.Conn(), xproto.GrabAny, r.root, xproto.ModMaskAny)

	r.modifier = ModifierMask(cfg.Modifier)
	r.binds = r.binds[:0]

	var errs []error
	for _, b := range cfg.Binds {
		action, err := command.Parse(b.Command)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		codes := keybind.StrToKeycodes(r.xu, b.Key)
		if len(codes) == 0 {
			errs = append(errs, unresolvedKeyError{key: b.Key})
			continue
		}
		code := codes[0]

		for _, lock := range lockMasks {
			xproto.GrabKey(r.xu.Conn(), true, r.root, r.modifier|lock, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}

		r.binds = append(r.binds, Bind{Keycode: code, Action: action})
	}
	return errs
}

// Match returns the action bound to a KeyPress's (keycode, state), masking
// out the lock modifiers grabbed alongside the real combination. The event
// matches only if the configured global modifier is present in state.
func (r *Resolver) Match(keycode xproto.Keycode, state uint16) (command.Action, bool) {
	effective := state &^ (xproto.ModMaskLock | xproto.ModMask2)
	if effective&r.modifier != r.modifier {
		return command.Action{}, false
	}
	for _, b := range r.binds {
		if b.Keycode == keycode {
			return b.Action, true
		}
	}
	return command.Action{}, false
}

type unresolvedKeyError struct{ key string }

func (e unresolvedKeyError) Error() string {
	return "no keysym/keycode found for key name " + e.key
}
