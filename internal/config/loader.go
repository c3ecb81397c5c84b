package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath returns $HOME/.config/<appname>/config.toml, per spec.md §6.
func DefaultPath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads and parses the configuration at path. If the file does not
// exist, it is created with Default()'s contents and Default() is returned.
// A parse failure returns Default() alongside the error so the caller can
// fall back per spec.md §7 (recoverable configuration error).
func Load(path string) (cfg *Config, wroteDefault bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := Default()
		if writeErr := WriteDefault(path, def); writeErr != nil {
			return def, false, fmt.Errorf("write default config: %w", writeErr)
		}
		return def, true, nil
	}
	if err != nil {
		return Default(), false, fmt.Errorf("read config: %w", err)
	}

	cfg = &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), false, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyZeroDefaults(cfg)
	return cfg, false, nil
}

// applyZeroDefaults fills in fields the TOML file left unset. go-toml/v2
// leaves unspecified struct fields at their Go zero value, which for most
// of this schema (border widths, gap size, floating geometry) is
// indistinguishable from "the user asked for zero". We treat zero as
// "unset" for the handful of fields whose real zero value would break
// rendering, matching the teacher's effective-config layering.
func applyZeroDefaults(cfg *Config) {
	def := Default()
	if cfg.Modifier == "" {
		cfg.Modifier = def.Modifier
	}
	if cfg.Appearance.BorderColor == "" {
		cfg.Appearance.BorderColor = def.Appearance.BorderColor
	}
	if cfg.Appearance.FocusedBorderColor == "" {
		cfg.Appearance.FocusedBorderColor = def.Appearance.FocusedBorderColor
	}
	if cfg.Appearance.Floating.Width == 0 {
		cfg.Appearance.Floating.Width = def.Appearance.Floating.Width
	}
	if cfg.Appearance.Floating.Height == 0 {
		cfg.Appearance.Floating.Height = def.Appearance.Floating.Height
	}
}

// WriteDefault marshals cfg as TOML and writes it to path, creating parent
// directories as needed. Used on first run and is exposed standalone so
// tests can assert on the documented default.
func WriteDefault(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
