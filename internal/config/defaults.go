package config

import _ "embed"

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/hockey.yaml
var defaultHockeyYAML []byte

// DefaultPongConfig is used when no YAML source parses.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  1.0,
			MaxBallSpeed: 1.5,
			SpinFactor:   0.15,
		},
		Paddles:  PongPaddles{Height: 5, Width: 1, Offset: 2},
		Gameplay: PongGameplay{WinScore: 5, ServeDelay: 60},
		CPU:      CPUConfig{MinSkill: 0.55, MaxSkill: 0.9},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "time", MaxAt: 36000}, // 10 minutes
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.35,
			PaddleSpeed:  1.2,
			MaxBallSpeed: 0.9,
			SpinFactor:   0.12,
		},
		Paddle: BreakoutPaddle{Width: 9, Offset: 2},
		Bricks: BrickConfig{
			Width: 6,
			Top:   3,
			Gap:   1,
			Layouts: []BrickLayout{{
				Name: "wall",
				Rows: []string{"##########", "##########", "##########", "##########", "##########"},
			}},
		},
		Gameplay: BreakoutGameplay{
			Lives:         3,
			BrickPoints:   10,
			SpeedUpEveryN: 10,
			SpeedUpAmount: 0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

func DefaultHockeyConfig() HockeyConfig {
	return HockeyConfig{
		Physics: HockeyPhysics{
			MalletSpeed:  0.8,
			ServeSpeed:   0.4,
			MaxPuckSpeed: 1.6,
			Friction:     0.995,
		},
		Mallet:   HockeyMallet{Width: 2, Height: 3},
		Rink:     HockeyRink{GoalHeight: 8},
		Gameplay: PongGameplay{WinScore: 7, ServeDelay: 45},
		CPU:      CPUConfig{MinSkill: 0.5, MaxSkill: 0.85},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "time", MaxAt: 36000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.4},
		},
	}
}

// GetDefaultYAML returns the embedded YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "breakout":
		return defaultBreakoutYAML
	case "hockey":
		return defaultHockeyYAML
	default:
		return nil
	}
}
