package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // columns
	ScreenH  int   // rows
	TickRate int   // steps per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform cares about.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned from every Game.Step.
type StepResult struct {
	State GameState
	// Contacts is how many body contacts the collision stage reported this
	// step.
	Contacts int
}
