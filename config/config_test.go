package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Window.Title != "Bludbourne" || cfg.Window.Width != 800 || cfg.Window.Height != 600 || !cfg.Window.VSync {
		t.Fatalf("unexpected window config %+v", cfg.Window)
	}
	if cfg.Maps.Default != "TOWN" {
		t.Fatalf("expected TOWN default, got %q", cfg.Maps.Default)
	}
	want := map[string]string{
		"TOP_WORLD":      "maps/topworld.tmx",
		"TOWN":           "maps/town.tmx",
		"CASTLE_OF_DOOM": "maps/castle_of_doom.tmx",
	}
	for name, path := range want {
		if got := cfg.Maps.Paths[name]; got != path {
			t.Errorf("path for %s = %q, want %q", name, got, path)
		}
	}
	if cfg.Camera.ViewportWidth != 10 || cfg.Camera.ViewportHeight != 10 {
		t.Fatalf("unexpected camera config %+v", cfg.Camera)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("window:\n  width: 1024\nmaps:\n  default: TOP_WORLD\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Fatalf("expected overridden width, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 || cfg.Window.Title != "Bludbourne" {
		t.Fatalf("defaults were lost: %+v", cfg.Window)
	}
	if cfg.Maps.Default != "TOP_WORLD" || cfg.Maps.Paths["TOWN"] == "" {
		t.Fatalf("unexpected maps config %+v", cfg.Maps)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		body string
	}{
		{"bad_yaml", "window: [\n"},
		{"unknown_default", "maps:\n  default: NOWHERE\n"},
		{"zero_viewport", "camera:\n  viewport_width: 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
