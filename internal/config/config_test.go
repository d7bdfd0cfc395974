package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("default backend = %q", cfg.Storage.Backend)
	}
	if cfg.UI.ClockFormat != "15:04:05" {
		t.Errorf("default clock format = %q", cfg.UI.ClockFormat)
	}
	if cfg.Storage.Path == "" {
		t.Error("default storage path is empty")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
backend = "file"
path = "/tmp/tasks.json"

[ui]
clock_format = "15:04"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/tasks.json" {
		t.Errorf("path = %q", cfg.Storage.Path)
	}
	if cfg.UI.ClockFormat != "15:04" {
		t.Errorf("clock format = %q", cfg.UI.ClockFormat)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Storage.Backend = "file"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Storage.Backend != "file" {
		t.Errorf("backend after round trip = %q", loaded.Storage.Backend)
	}
}
