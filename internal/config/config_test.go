package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")

	cfg, wroteDefault, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !wroteDefault {
		t.Fatalf("Load of a missing file should report wroteDefault = true")
	}
	if cfg.Modifier != Default().Modifier {
		t.Fatalf("Load returned %+v, want Default()", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Load did not write the config file: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	def := Default()
	def.Modifier = "super"
	def.Appearance.Gaps = 16
	if err := WriteDefault(path, def); err != nil {
		t.Fatalf("WriteDefault error: %v", err)
	}

	cfg, wroteDefault, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if wroteDefault {
		t.Fatalf("Load of an existing file should report wroteDefault = false")
	}
	if cfg.Modifier != "super" || cfg.Appearance.Gaps != 16 {
		t.Fatalf("Load round-trip = %+v, want modifier=super gaps=16", cfg)
	}
	if len(cfg.Binds) != len(def.Binds) {
		t.Fatalf("Load round-trip binds = %d, want %d", len(cfg.Binds), len(def.Binds))
	}
}

func TestLoadAppliesZeroDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	const partial = `modifier = "ctrl"
`
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write partial config: %v", err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Modifier != "ctrl" {
		t.Fatalf("explicit value overwritten: modifier = %q", cfg.Modifier)
	}
	if cfg.Appearance.BorderColor != Default().Appearance.BorderColor {
		t.Fatalf("unset border colour = %q, want default %q", cfg.Appearance.BorderColor, Default().Appearance.BorderColor)
	}
	if cfg.Appearance.Floating.Width != Default().Appearance.Floating.Width {
		t.Fatalf("unset floating width = %d, want default %d", cfg.Appearance.Floating.Width, Default().Appearance.Floating.Width)
	}
}

func TestLoadFallsBackOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("this is not valid toml [[["), 0o644); err != nil {
		t.Fatalf("write broken config: %v", err)
	}

	cfg, wroteDefault, err := Load(path)
	if err == nil {
		t.Fatalf("Load of an unparsable file should return an error")
	}
	if wroteDefault {
		t.Fatalf("Load of an unparsable file should not report wroteDefault = true")
	}
	if cfg.Modifier != Default().Modifier {
		t.Fatalf("Load fallback = %+v, want Default()", cfg)
	}
}
