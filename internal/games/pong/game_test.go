package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paddles/internal/collision"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/resources"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// launch skips the serve delay and puts the ball at pos with velocity vel.
func launch(g *Game, pos, vel collision.Vec2) {
	g.serving = false
	g.serveDelay = 0
	g.motion.SetPosition(g.ballPt, pos)
	g.motion.SetVelocity(g.ballPt, vel)
}

func TestGameDeterminism(t *testing.T) {
	g1 := newGame(t, 7)
	g2 := newGame(t, 7)

	for i := range 900 {
		in := core.NewInputFrame()
		switch i % 40 {
		case 0, 1, 2, 3:
			in.Set(core.ActionUp)
		case 20, 21, 22:
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("diverged at tick %d:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestBallBouncesOffWall(t *testing.T) {
	g := newGame(t, 1)
	launch(g, collision.V(40, 2), collision.V(0.25, -0.75))

	res := g.Step(core.NewInputFrame())

	if got := g.world.Center(g.index(ball)); got != collision.V(40.25, 1.5) {
		t.Errorf("ball center = %v, expected (40.25, 1.5)", got)
	}
	if got := g.motion.Velocity(g.ballPt); got != collision.V(0.25, 0.75) {
		t.Errorf("ball velocity = %v, expected (0.25, 0.75)", got)
	}
	if res.Contacts == 0 {
		t.Error("expected the wall contact to be reported")
	}
}

func TestBallBouncesOffPaddle(t *testing.T) {
	g := newGame(t, 1)
	launch(g, collision.V(4, 12), collision.V(-0.75, 0))

	g.Step(core.NewInputFrame())

	if got := g.world.Center(g.index(ball)); got.X != 3.5 {
		t.Errorf("ball x = %v, expected 3.5", got.X)
	}
	vel := g.motion.Velocity(g.ballPt)
	if vel.X <= 0.75 {
		t.Errorf("ball should leave the paddle faster, vx = %v", vel.X)
	}
	if vel.Y != 0 {
		t.Errorf("center hit should add no spin, vy = %v", vel.Y)
	}
	if g.rally != 1 {
		t.Errorf("rally = %d, expected 1", g.rally)
	}
}

func TestPaddleSpin(t *testing.T) {
	g := newGame(t, 1)
	// Hit the lower half of the player's paddle.
	launch(g, collision.V(4, 13.5), collision.V(-0.75, 0))

	g.Step(core.NewInputFrame())

	if vy := g.motion.Velocity(g.ballPt).Y; vy <= 0 {
		t.Errorf("low hit should send the ball down, vy = %v", vy)
	}
}

func TestGoalScores(t *testing.T) {
	g := newGame(t, 1)
	launch(g, collision.V(1, 5), collision.V(-1.5, 0))

	g.Step(core.NewInputFrame())

	if got := g.score(sideCPU); got != 1 {
		t.Errorf("cpu score = %d, expected 1", got)
	}
	if got := g.score(sidePlayer); got != 0 {
		t.Errorf("player score = %d, expected 0", got)
	}
	if !g.serving {
		t.Error("a goal should start a new serve")
	}
	if got := g.motion.Position(g.ballPt); got != collision.V(40, 12) {
		t.Errorf("ball should return to the center, got %v", got)
	}
	// The serve heads toward the side that scored.
	if vx := g.motion.Velocity(g.ballPt).X; vx <= 0 {
		t.Errorf("serve vx = %v, expected toward the cpu", vx)
	}
}

func TestMatchPoint(t *testing.T) {
	g := newGame(t, 1)
	win := g.cfg.Gameplay.WinScore
	g.scores.Queue(resources.Set[side]{Pool: sidePlayer, Value: win - 1})
	g.scores.Update()

	launch(g, collision.V(79, 5), collision.V(1.5, 0))
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("expected the match to end")
	}
	if g.winner != sidePlayer {
		t.Errorf("winner = %q, expected player", g.winner)
	}
	if g.State().Score != win {
		t.Errorf("state score = %d, expected %d", g.State().Score, win)
	}

	before := g.Snapshot()
	g.Step(core.InputOf(core.ActionUp))
	if g.Snapshot() != before {
		t.Error("Step should do nothing after game over")
	}
}

func TestPause(t *testing.T) {
	g := newGame(t, 1)

	g.Step(core.InputOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	tick := g.tickCount
	g.Step(core.InputOf(core.ActionDown))
	if g.tickCount != tick {
		t.Error("tick advanced while paused")
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestPlayerPaddleMovement(t *testing.T) {
	g := newGame(t, 1)
	start := g.playerY

	g.Step(core.InputOf(core.ActionUp))
	if g.playerY != start-g.cfg.Physics.PaddleSpeed {
		t.Errorf("playerY = %v, expected %v", g.playerY, start-g.cfg.Physics.PaddleSpeed)
	}

	for range 100 {
		g.Step(core.InputOf(core.ActionUp))
	}
	if top := 1 + g.paddleHalf.Y; g.playerY != top {
		t.Errorf("paddle should stop at the wall, y = %v, expected %v", g.playerY, top)
	}

	got := g.world.Center(g.index(paddlePlayer))
	if got != collision.V(g.playerX, g.playerY) {
		t.Errorf("paddle body at %v, expected it to follow the paddle", got)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	g.serveDelay = 0
	g.sync()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "P1") || !strings.Contains(row, "CPU") {
		t.Errorf("HUD row = %q", row)
	}
	if got := screen.Get(2, 12); got != PaddleChar {
		t.Errorf("player paddle cell = %q, expected %q", got, PaddleChar)
	}
	if got := screen.Get(77, 12); got != PaddleChar {
		t.Errorf("cpu paddle cell = %q, expected %q", got, PaddleChar)
	}
	if got := screen.Get(40, 12); got != BallChar {
		t.Errorf("ball cell = %q, expected %q", got, BallChar)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("pong") {
		t.Error("pong should register itself")
	}
}
