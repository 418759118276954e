package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	b, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if b != DefaultBreakoutConfig() {
		t.Errorf("embedded breakout config = %+v, want %+v", b, DefaultBreakoutConfig())
	}

	s, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if s != DefaultShooterConfig() {
		t.Errorf("embedded shooter config = %+v, want %+v", s, DefaultShooterConfig())
	}
}

func TestLoadCustomPathOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := []byte("physics:\n  oblique_reflection: false\nplayer:\n  lives: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Physics.ObliqueReflection {
		t.Error("oblique_reflection should be overridden to false")
	}
	if cfg.Player.Lives != 9 {
		t.Errorf("lives = %d, want 9", cfg.Player.Lives)
	}
	if cfg.Physics.BulletSpeed != DefaultShooterConfig().Physics.BulletSpeed {
		t.Errorf("bullet_speed = %v, want default", cfg.Physics.BulletSpeed)
	}
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "breakout.yaml"), []byte("paddle:\n  width: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 12 {
		t.Errorf("paddle width = %d, want 12", cfg.Paddle.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestPresetApply(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.5},
	}
	for _, tt := range tests {
		d := DifficultyConfig{Enabled: true, InitialLevel: 0.5}
		d.Apply(tt.preset)
		if d.Enabled != tt.enabled || d.InitialLevel != tt.level {
			t.Errorf("Apply(%s) = {%v %v}, want {%v %v}", tt.preset, d.Enabled, d.InitialLevel, tt.enabled, tt.level)
		}
	}

	if ParsePreset("bogus") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.5},
	})

	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, want 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, want clamped 1.0", got)
	}
	if got := dm.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed at max = %v, want 4", got)
	}
	if got := dm.SpawnInterval(100, 10, 100, 0); got != 50 {
		t.Errorf("SpawnInterval at max = %d, want 50", got)
	}
	if got := dm.SpawnInterval(12, 10, 100, 0); got != 10 {
		t.Errorf("SpawnInterval floor = %d, want 10", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.3})
	if fixed.IsEnabled() {
		t.Error("disabled config should not progress")
	}
	if got := fixed.Level(1000, 1000); got != 0.3 {
		t.Errorf("fixed Level = %v, want 0.3", got)
	}
}
