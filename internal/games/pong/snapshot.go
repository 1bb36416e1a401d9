package pong

import "github.com/vovakirdan/paddles/internal/collision"

// Snapshot is a comparable copy of the match state.
type Snapshot struct {
	Tick        int
	Ball        collision.Vec2
	BallVel     collision.Vec2
	PlayerY     float64
	CPUY        float64
	PlayerScore int
	CPUScore    int
	Rally       int
	Serving     bool
	GameOver    bool
	Winner      string
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tickCount,
		Ball:        g.world.Center(g.index(ball)),
		BallVel:     g.motion.Velocity(g.ballPt),
		PlayerY:     g.playerY,
		CPUY:        g.cpuY,
		PlayerScore: g.score(sidePlayer),
		CPUScore:    g.score(sideCPU),
		Rally:       g.rally,
		Serving:     g.serving,
		GameOver:    g.gameOver,
		Winner:      string(g.winner),
	}
}
