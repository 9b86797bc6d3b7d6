package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadGameConfig(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := LoadGameConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Player.Lives != 3 || cfg.Spawn.BaseRate != 0.012 {
			t.Errorf("defaults not applied: %+v", cfg)
		}
	})

	t.Run("partial override keeps other defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		data := "missionMode: false\nplayer:\n  lives: 5\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Player.Lives != 5 {
			t.Errorf("lives = %d, want 5", cfg.Player.Lives)
		}
		if cfg.Player.Health != 100 {
			t.Errorf("health = %d, want default 100", cfg.Player.Health)
		}
		if cfg.MissionMode {
			t.Error("missionMode override ignored")
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("player: [1, 2"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadGameConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("phase:\n  minLarge: 5\n  maxLarge: 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadGameConfig(path); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saved.yaml")
		cfg := DefaultGameConfig()
		cfg.Cargo.MaxActive = 2
		if err := SaveGameConfig(path, cfg); err != nil {
			t.Fatal(err)
		}
		got, err := LoadGameConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if got.Cargo.MaxActive != 2 {
			t.Errorf("maxActive = %d, want 2", got.Cargo.MaxActive)
		}
	})
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(target, []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "game.yaml" {
			t.Errorf("event for %s, want game.yaml", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event for yaml file")
	}

	if err := w.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
