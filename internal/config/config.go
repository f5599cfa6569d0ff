// Package config persists editor-only preferences across runs. Scene
// documents are separate and handled by the document package.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the editor prefs file, relative to the process
// working directory.
const PrefsPath = "config/composer.json"

// Prefs holds editor preferences: debug overlays, grid, and the last opened
// document so the next session can pick up where the user left off.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	LastDocument string `json:"last_document,omitempty"`
}

// Default returns default preferences (overlays off, grid on).
func Default() Prefs {
	return Prefs{GridVisible: true}
}

// Load reads preferences from PrefsPath. A missing or invalid file yields
// Default() without creating anything.
func Load() Prefs {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to PrefsPath, creating the config directory if
// needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
