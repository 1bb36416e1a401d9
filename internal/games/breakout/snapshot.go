package breakout

import "github.com/vovakirdan/paddles/internal/collision"

// Snapshot is a comparable copy of the game state.
type Snapshot struct {
	Tick      int
	State     string
	Level     int
	Score     int
	Lives     int
	Bricks    int
	Bodies    int
	PaddleX   float64
	Ball      collision.Vec2
	BallVel   collision.Vec2
	Destroyed int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		State:     g.state,
		Level:     g.levelIndex,
		Score:     g.value(poolScore),
		Lives:     g.value(poolLives),
		Bricks:    g.value(poolBricks),
		Bodies:    g.world.Len(),
		PaddleX:   g.paddleX,
		Ball:      g.motion.Position(g.ballPt),
		BallVel:   g.motion.Velocity(g.ballPt),
		Destroyed: g.destroyed,
	}
}
