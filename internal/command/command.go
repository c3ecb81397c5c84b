// Package command parses the textual action grammar bound to keys in the
// configuration file (spec.md §4.4).
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which action a parsed command represents.
type Kind int

const (
	Exit Kind = iota
	Close
	Spawn
	Workspace
	ToggleFloat
	ToggleFullscreen
)

// Action is a parsed, ready-to-execute command. Arg holds the whole command
// line after "spawn " for Spawn (e.g. "xterm -e tmux"), and Index holds the
// zero-based workspace index for Workspace.
type Action struct {
	Kind  Kind
	Arg   string
	Index int
}

// Parse converts the textual form from configuration into an Action, per
// the grammar table in spec.md §4.4. Workspace indices are 1-based in text
// ("workspace1".."workspace10") and zero-based in the returned Action.
func Parse(text string) (Action, error) {
	text = strings.TrimSpace(text)

	switch {
	case text == "exit":
		return Action{Kind: Exit}, nil
	case text == "close":
		return Action{Kind: Close}, nil
	case text == "toggle_float":
		return Action{Kind: ToggleFloat}, nil
	case text == "toggle_fullscreen":
		return Action{Kind: ToggleFullscreen}, nil
	case strings.HasPrefix(text, "spawn "):
		argv0 := strings.TrimSpace(strings.TrimPrefix(text, "spawn "))
		if argv0 == "" {
			return Action{}, fmt.Errorf("command %q: spawn requires an argument", text)
		}
		return Action{Kind: Spawn, Arg: argv0}, nil
	case strings.HasPrefix(text, "workspace"):
		numText := strings.TrimPrefix(text, "workspace")
		n, err := strconv.Atoi(numText)
		if err != nil {
			return Action{}, fmt.Errorf("command %q: invalid workspace number: %w", text, err)
		}
		if n < 1 || n > 10 {
			return Action{}, fmt.Errorf("command %q: workspace number must be 1..10", text)
		}
		return Action{Kind: Workspace, Index: n - 1}, nil
	default:
		return Action{}, fmt.Errorf("unrecognized command %q", text)
	}
}
