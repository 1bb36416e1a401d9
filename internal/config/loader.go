package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// UserConfigDir is where per-user overrides live, relative to the home
// directory.
const UserConfigDir = ".paddles/configs"

// load resolves a game's config. Search order: customPath, then
// ~/.paddles/configs/<game>.yaml, then ./configs/<game>.yaml, then the
// embedded default, then the hardcoded fallback. Only a bad customPath is an
// error; the other sources are skipped when missing or unparsable.
func load[T any](game, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		var cfg T
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := game + ".yaml"
	for _, path := range []string{userConfigPath(file), filepath.Join("configs", file)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg T
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, filename)
}

func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

func LoadHockey(customPath string) (HockeyConfig, error) {
	return load("hockey", customPath, defaultHockeyYAML, DefaultHockeyConfig)
}

// clone deep-copies a config so presets never alias slices of the caller's
// value.
func clone[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// Config types are plain structs; copier only fails on mismatched kinds.
		panic(fmt.Sprintf("config: copy %T: %v", src, err))
	}
	return dst
}

func applyDifficulty(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyPongPreset returns a copy of cfg tuned for preset.
func ApplyPongPreset(cfg PongConfig, preset DifficultyPreset) PongConfig {
	out := clone(cfg)
	applyDifficulty(&out.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		out.Paddles.Height++
	case DifficultyHard:
		out.Paddles.Height = max(out.Paddles.Height-1, 2)
		out.CPU.MinSkill = max(out.CPU.MinSkill, 0.75)
	}
	return out
}

// ApplyBreakoutPreset returns a copy of cfg tuned for preset.
func ApplyBreakoutPreset(cfg BreakoutConfig, preset DifficultyPreset) BreakoutConfig {
	out := clone(cfg)
	applyDifficulty(&out.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		out.Gameplay.Lives = 5
		out.Paddle.Width += 2
		out.Physics.BallSpeed *= 0.8
	case DifficultyHard:
		out.Gameplay.Lives = 2
		out.Paddle.Width = max(out.Paddle.Width-2, 3)
		out.Physics.BallSpeed *= 1.25
	}
	return out
}

// ApplyHockeyPreset returns a copy of cfg tuned for preset.
func ApplyHockeyPreset(cfg HockeyConfig, preset DifficultyPreset) HockeyConfig {
	out := clone(cfg)
	applyDifficulty(&out.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		out.Rink.GoalHeight += 2
	case DifficultyHard:
		out.CPU.MinSkill = max(out.CPU.MinSkill, 0.7)
		out.CPU.MaxSkill = max(out.CPU.MaxSkill, 0.95)
	}
	return out
}
