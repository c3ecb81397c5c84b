// Package config defines the on-disk configuration schema for the window
// manager and the defaults applied when a value, or the whole file, is
// missing.
package config

// Bind associates one key name with one command-vocabulary action string.
// The grammar for Command is defined by package command.
type Bind struct {
	Key     string `toml:"key"`
	Command string `toml:"command"`
}

// Floating holds the defaults applied to a window the instant it becomes
// floating via toggle_float.
type Floating struct {
	CenterOnFloat bool   `toml:"center_on_float"`
	Width         uint32 `toml:"width"`
	Height        uint32 `toml:"height"`
}

// Appearance controls border, gap, and focus-tracking behaviour.
type Appearance struct {
	BorderWidth        uint32   `toml:"border_width"`
	BorderColor        string   `toml:"border_color"`
	FocusedBorderColor string   `toml:"focused_border_color"`
	Gaps               uint32   `toml:"gaps"`
	FocusFollowsMouse  bool     `toml:"focus_follows_mouse"`
	Floating           Floating `toml:"floating"`
}

// Config is the full, validated configuration for one run of the manager.
type Config struct {
	Modifier             string     `toml:"modifier"`
	LoggingEnabled       bool       `toml:"logging_enabled"`
	AutoGenerated        bool       `toml:"auto_generated"`
	NotificationsEnabled bool       `toml:"notifications_enabled"`
	Appearance           Appearance `toml:"appearance"`
	Binds                []Bind     `toml:"binds"`
}

const appName = "tilewm"

// Default returns the built-in configuration documented in spec.md §6.
// It is returned both as the fallback when the file cannot be parsed, and
// as the body written to disk the first time the manager runs.
func Default() *Config {
	return &Config{
		Modifier:             "alt",
		LoggingEnabled:       true,
		AutoGenerated:        false,
		NotificationsEnabled: true,
		Appearance: Appearance{
			BorderWidth:        2,
			BorderColor:        "#2B0000",
			FocusedBorderColor: "#FF0000",
			Gaps:               8,
			FocusFollowsMouse:  true,
			Floating: Floating{
				CenterOnFloat: true,
				Width:         800,
				Height:        600,
			},
		},
		Binds: []Bind{
			{Key: "q", Command: "exit"},
			{Key: "c", Command: "close"},
			{Key: "Return", Command: "spawn xterm"},
			{Key: "space", Command: "toggle_float"},
			{Key: "f", Command: "toggle_fullscreen"},
			{Key: "1", Command: "workspace1"},
			{Key: "2", Command: "workspace2"},
			{Key: "3", Command: "workspace3"},
			{Key: "4", Command: "workspace4"},
			{Key: "5", Command: "workspace5"},
			{Key: "6", Command: "workspace6"},
			{Key: "7", Command: "workspace7"},
			{Key: "8", Command: "workspace8"},
			{Key: "9", Command: "workspace9"},
			{Key: "0", Command: "workspace10"},
		},
	}
}
