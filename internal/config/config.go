// Package config loads per-game tuning from YAML. Every game has an embedded
// default that a user file can override.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Speeds are in cells per tick unless noted otherwise.

type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        CPUConfig        `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"` // vertical speed added per cell of hit offset
}

type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"` // columns between the side wall and the paddle
}

type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // ticks
}

// CPUConfig bounds how well a computer opponent tracks its target. Skill is
// interpolated between the two as difficulty rises.
type CPUConfig struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
}

type BreakoutPaddle struct {
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"` // rows above the bottom edge
}

// BrickConfig describes the wall. Each layout is a list of rows; '#' places
// a brick in that column and anything else leaves a hole.
type BrickConfig struct {
	Width   int           `yaml:"width"`
	Top     int           `yaml:"top"` // first brick row
	Gap     int           `yaml:"gap"` // columns between bricks
	Layouts []BrickLayout `yaml:"layouts"`
}

type BrickLayout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Count returns how many bricks the layout places.
func (l BrickLayout) Count() int {
	n := 0
	for _, row := range l.Rows {
		n += strings.Count(row, "#")
	}
	return n
}

type BreakoutGameplay struct {
	Lives         int     `yaml:"lives"`
	BrickPoints   int     `yaml:"brick_points"`
	SpeedUpEveryN int     `yaml:"speed_up_every_n"` // bricks
	SpeedUpAmount float64 `yaml:"speed_up_amount"`
}

type HockeyConfig struct {
	Physics    HockeyPhysics    `yaml:"physics"`
	Mallet     HockeyMallet     `yaml:"mallet"`
	Rink       HockeyRink       `yaml:"rink"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        CPUConfig        `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type HockeyPhysics struct {
	MalletSpeed  float64 `yaml:"mallet_speed"`
	ServeSpeed   float64 `yaml:"serve_speed"`
	MaxPuckSpeed float64 `yaml:"max_puck_speed"`
	Friction     float64 `yaml:"friction"` // puck velocity multiplier per tick
}

type HockeyMallet struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type HockeyRink struct {
	GoalHeight int `yaml:"goal_height"`
}

// DifficultyConfig controls how a game gets harder during a match.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0 easy, 1 hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1
}

type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra speed at level 1
}

// DifficultyPreset is a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// InitialLevelForPreset returns the starting level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0
	}
}
