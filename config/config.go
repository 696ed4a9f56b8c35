// Package config loads and saves the multiplexer's on-disk settings,
// grounded on RavenTerminal's config package: a JSON file under an
// XDG-style config directory, with a zero-value-safe default on any
// read error.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the on-disk settings. cmd/vterm reads Shell and
// StatusLine at startup; Layout and Keybindings are loaded and saved but
// not read by any package (the layout is always tiled and the key
// bindings are the fixed ones in mux.KeyRouter).
type Config struct {
	Shell       string            `json:"shell"`
	Layout      string            `json:"layout"` // "tiled" or "overlay"
	StatusLine  bool              `json:"status_line"`
	Keybindings map[string]string `json:"keybindings"`
}

// DefaultConfig returns the configuration used when no file exists yet
// or the file fails to parse.
func DefaultConfig() *Config {
	return &Config{
		Shell:      "",
		Layout:     "tiled",
		StatusLine: true,
		Keybindings: map[string]string{
			"prefix":     "ctrl+b",
			"new_panel":  "c",
			"next_panel": "n",
		},
	}
}

// Path returns the config file location, creating its parent directory
// if necessary.
func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vterm.json"
	}
	dir := filepath.Join(homeDir, ".config", "vterm")
	os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "config.json")
}

// Load reads the config file, falling back to DefaultConfig when it is
// absent or malformed; a parse error is returned alongside the default
// so the caller can log it, per the ambient stack's "return error,
// don't panic" rule for OS-facing code.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the config back to disk as indented JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0o644)
}
