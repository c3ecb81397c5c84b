package command

import "testing"

func TestParseSimpleActions(t *testing.T) {
	cases := map[string]Kind{
		"exit":              Exit,
		"close":             Close,
		"toggle_float":      ToggleFloat,
		"toggle_fullscreen": ToggleFullscreen,
	}
	for text, want := range cases {
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		if got.Kind != want {
			t.Fatalf("Parse(%q).Kind = %v, want %v", text, got.Kind, want)
		}
	}
}

func TestParseSpawn(t *testing.T) {
	got, err := Parse("spawn xterm -e tmux")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Kind != Spawn || got.Arg != "xterm -e tmux" {
		t.Fatalf("Parse(spawn) = %+v", got)
	}
}

func TestParseSpawnRequiresArgument(t *testing.T) {
	if _, err := Parse("spawn "); err == nil {
		t.Fatalf("Parse(\"spawn \") should error")
	}
	if _, err := Parse("spawn"); err == nil {
		t.Fatalf("Parse(\"spawn\") should error")
	}
}

func TestParseWorkspace(t *testing.T) {
	for n := 1; n <= 10; n++ {
		text := "workspace" + itoa(n)
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		if got.Kind != Workspace || got.Index != n-1 {
			t.Fatalf("Parse(%q) = %+v, want Index %d", text, got, n-1)
		}
	}
}

func TestParseWorkspaceOutOfRange(t *testing.T) {
	for _, text := range []string{"workspace0", "workspace11", "workspace", "workspacex"} {
		if _, err := Parse(text); err == nil {
			t.Fatalf("Parse(%q) should error", text)
		}
	}
}

func TestParseUnrecognized(t *testing.T) {
	if _, err := Parse("frobnicate"); err == nil {
		t.Fatalf("Parse of an unrecognised command should error")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}
