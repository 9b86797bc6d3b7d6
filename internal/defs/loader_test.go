package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnemyLibraryDefaults(t *testing.T) {
	t.Cleanup(ResetEnemyDefinitions)

	cases := []struct {
		kind  EnemyKind
		hp    int
		speed float64
		score int
	}{
		{EnemySmall, 1, 6, 10},
		{EnemyMedium, 12, 2, 30},
		{EnemyLarge, 1000, 1, 80},
		{EnemyBoss, 50000, 0.6, 1500},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			def := Enemy(tc.kind)
			if def.HP != tc.hp || def.Speed != tc.speed || def.Score != tc.score {
				t.Errorf("%s = %+v", tc.kind, def)
			}
		})
	}

	if Enemy("dragon").ID != EnemySmall {
		t.Error("unknown kind must fall back to small")
	}
}

func TestLoadEnemyDefinitions(t *testing.T) {
	t.Cleanup(ResetEnemyDefinitions)

	t.Run("override one kind", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enemies.yaml")
		data := "- id: medium\n  width: 50\n  height: 50\n  hp: 20\n  speed: 3\n  score: 40\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := LoadEnemyDefinitions(path); err != nil {
			t.Fatalf("load: %v", err)
		}
		if got := Enemy(EnemyMedium).HP; got != 20 {
			t.Errorf("medium hp = %d, want 20", got)
		}
		if got := Enemy(EnemyBoss).HP; got != 50000 {
			t.Errorf("boss hp = %d, want built-in 50000", got)
		}
	})

	t.Run("reject unknown kind", func(t *testing.T) {
		if _, err := ParseEnemyDefinitions([]byte("- id: dragon\n  width: 1\n  height: 1\n  hp: 1\n")); err == nil {
			t.Error("expected error for unknown kind")
		}
	})

	t.Run("reject non-positive hp", func(t *testing.T) {
		if _, err := ParseEnemyDefinitions([]byte("- id: small\n  width: 1\n  height: 1\n  hp: 0\n")); err == nil {
			t.Error("expected error for hp 0")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected read error")
		}
	})
}
