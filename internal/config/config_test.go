package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var pong PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &pong); err != nil {
		t.Fatalf("parse pong: %v", err)
	}
	if pong != DefaultPongConfig() {
		t.Errorf("embedded pong = %+v\nhardcoded = %+v", pong, DefaultPongConfig())
	}

	var hockey HockeyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("hockey"), &hockey); err != nil {
		t.Fatalf("parse hockey: %v", err)
	}
	if hockey != DefaultHockeyConfig() {
		t.Errorf("embedded hockey = %+v\nhardcoded = %+v", hockey, DefaultHockeyConfig())
	}

	var breakout BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &breakout); err != nil {
		t.Fatalf("parse breakout: %v", err)
	}
	if len(breakout.Bricks.Layouts) != 3 {
		t.Errorf("expected 3 layouts, got %d", len(breakout.Bricks.Layouts))
	}
	if got := breakout.Bricks.Layouts[0].Count(); got != 50 {
		t.Errorf("wall layout has %d bricks, expected 50", got)
	}
	if breakout.Gameplay != DefaultBreakoutConfig().Gameplay {
		t.Errorf("gameplay = %+v", breakout.Gameplay)
	}

	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  win_score: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Gameplay.WinScore != 11 {
		t.Errorf("WinScore = %d, expected 11", cfg.Gameplay.WinScore)
	}

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, expected ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadHockey("")
	if err != nil {
		t.Fatalf("LoadHockey: %v", err)
	}
	if cfg != DefaultHockeyConfig() {
		t.Errorf("LoadHockey = %+v, expected embedded default", cfg)
	}
}

func TestLoadPrefersUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, UserConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "breakout.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9 from user config", cfg.Gameplay.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) err = %v", tc.in, err)
			continue
		}
		if tc.wantErr && !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("ParsePreset(%q) err = %v, expected ErrUnknownPreset", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPresetCopies(t *testing.T) {
	base := DefaultBreakoutConfig()

	hard := ApplyBreakoutPreset(base, DifficultyHard)
	hard.Bricks.Layouts[0].Rows[0] = "#........."

	if base.Bricks.Layouts[0].Rows[0] != "##########" {
		t.Error("preset shares layout rows with its input")
	}
	if hard.Gameplay.Lives != 2 || !hard.Difficulty.Enabled || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v / %+v", hard.Gameplay, hard.Difficulty)
	}

	fixed := ApplyPongPreset(DefaultPongConfig(), DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	easy := ApplyHockeyPreset(DefaultHockeyConfig(), DifficultyEasy)
	if easy.Rink.GoalHeight != DefaultHockeyConfig().Rink.GoalHeight+2 {
		t.Errorf("easy goal height = %d", easy.Rink.GoalHeight)
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	}

	tests := []struct {
		name         string
		initial      float64
		score, ticks int
		level        float64
	}{
		{"start", 0, 0, 0, 0},
		{"halfway", 0, 50, 0, 0.5},
		{"past max", 0, 500, 0, 1},
		{"from initial", 0.5, 50, 0, 0.75},
		{"ticks ignored for score progression", 0, 0, 9999, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dm := NewDifficultyManager(cfg)
			dm.SetInitialLevel(tc.initial)
			if got := dm.Level(tc.score, tc.ticks); got != tc.level {
				t.Errorf("Level = %v, expected %v", got, tc.level)
			}
		})
	}

	dm := NewDifficultyManager(cfg)
	if got := dm.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed at max = %v, expected 4", got)
	}
	if got := dm.Skill(CPUConfig{MinSkill: 0.5, MaxSkill: 0.9}, 0, 0); got != 0.5 {
		t.Errorf("Skill at start = %v, expected 0.5", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() || dm.Level(100, 0) != 0 {
		t.Error("disabled manager should stay at the initial level")
	}
}
