package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".dropdown")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		raw := `{
  "name": "Color",
  "options": ["Red", "Green", "Blue"],
  "list_id": "colors",
  "profile": "direct",
  "max_visible": 3,
  "width": 30
}`
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(raw), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		want := &Config{
			Name:       "Color",
			Options:    []string{"Red", "Green", "Blue"},
			ListID:     "colors",
			Profile:    "direct",
			MaxVisible: 3,
			Width:      30,
		}
		if !reflect.DeepEqual(cfg, want) {
			t.Errorf("Load: got %+v, want %+v", cfg, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(cfg, &Config{}) {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		_, err := LoadFile(path)
		if err == nil {
			t.Fatal("expected error for invalid json")
		}
		if !strings.Contains(err.Error(), "parse config") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Name: "Size", Options: []string{"S", "M", "L"}}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFile)); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestMerge(t *testing.T) {
	base := Config{Name: "Color", Options: []string{"Red"}, MaxVisible: 4, Width: 20}

	got := base.Merge(Config{Options: []string{"Cyan", "Magenta"}, Profile: "direct"})
	want := Config{
		Name:       "Color",
		Options:    []string{"Cyan", "Magenta"},
		Profile:    "direct",
		MaxVisible: 4,
		Width:      20,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge: got %+v, want %+v", got, want)
	}
	if base.Options[0] != "Red" {
		t.Error("Merge modified the receiver")
	}
}
