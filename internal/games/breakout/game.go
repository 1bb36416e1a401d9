package breakout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/paddles/internal/collision"
	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/games/arena"
	"github.com/vovakirdan/paddles/internal/motion"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/resources"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickChar   = '█'
	BorderVert  = '│'
	BorderHoriz = '─'
)

// Game states
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every layout cleared
)

// Resource pools
const (
	poolScore  = "score"
	poolLives  = "lives"
	poolBricks = "bricks"
)

const ballHalf = 0.5

// Game implements the Breakout game logic.
type Game struct {
	configPath string
	preset     config.DifficultyPreset
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	world  *collision.Engine[entity]
	motion *motion.Points
	ballPt int
	pools  *resources.Queued[string]
	grid   brickGrid

	state      string
	paused     bool
	levelIndex int
	tickCount  int
	serveDelay int
	destroyed  int // bricks destroyed this game
	contacts   int

	width, height float64
	paddleX       float64
	paddleY       float64
	paddleHalf    collision.Vec2
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{preset: config.DifficultyNormal}
}

func (g *Game) ID() string    { return "breakout" }
func (g *Game) Title() string { return "Breakout" }

// Controls describes the keys shown in the menu.
func (g *Game) Controls() string {
	return "A/D or ←/→ move  SPACE launch  P pause  R restart after game over"
}

// Configure sets the config file and difficulty preset used by the next
// Reset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) {
	g.configPath = path
	g.preset = preset
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(g.configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.cfg = config.ApplyBreakoutPreset(cfg, g.preset)
	if len(g.cfg.Bricks.Layouts) == 0 {
		g.cfg.Bricks.Layouts = config.DefaultBreakoutConfig().Bricks.Layouts
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)

	pw := core.Clamp(g.cfg.Paddle.Width, 1, max(runtime.ScreenW-6, 1))
	g.paddleHalf = collision.V(float64(pw)/2, 0.5)
	g.paddleY = g.height - float64(g.cfg.Paddle.Offset) - 0.5

	g.pools = resources.NewQueued[string]()
	g.pools.AddPool(poolScore, 0, 0, math.MaxInt32)
	g.pools.AddPool(poolLives, g.cfg.Gameplay.Lives, 0, g.cfg.Gameplay.Lives)

	g.paused = false
	g.levelIndex = 0
	g.tickCount = 0
	g.destroyed = 0
	g.contacts = 0

	g.loadLevel(0)
}

// loadLevel rebuilds the world for layout index and serves.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.grid = placeBricks(g.cfg.Bricks.Layouts[index], g.cfg.Bricks, g.runtime.ScreenW)
	g.pools.AddPool(poolBricks, len(g.grid.bricks), 0, len(g.grid.bricks))

	w, h := g.width, g.height
	g.paddleX = w / 2

	g.world = collision.New[entity]()
	// Walls leave half-cell gaps at the corners so they never touch each
	// other; the ball is too big to slip through.
	sideHalf := collision.V(0.5, (h-1.5)/2)
	sideY := 2.5 + sideHalf.Y
	g.world.AddBody(collision.V(0.5, sideY), sideHalf, collision.Zero, true, true, entity{Kind: kindWall, Col: -1})
	g.world.AddBody(collision.V(w/2, 1.5), collision.V(w/2-1.5, 0.5), collision.Zero, true, true, entity{Kind: kindWall})
	g.world.AddBody(collision.V(w-0.5, sideY), sideHalf, collision.Zero, true, true, entity{Kind: kindWall, Col: 1})
	g.world.AddBody(collision.V(w/2, h+1), collision.V(w/2-1.5, 0.5), collision.Zero, false, true, floorID)
	g.world.AddBody(collision.V(g.paddleX, g.paddleY), g.paddleHalf, collision.Zero, true, true, paddleID)
	g.world.AddBody(g.restingBall(), collision.Splat(ballHalf), collision.Zero, true, false, ballID)
	for _, b := range g.grid.bricks {
		g.world.AddBody(b.Center, b.HalfExtent, collision.Zero, true, true, brickID(b.Row, b.Col))
	}

	g.motion = motion.NewPoints()
	g.ballPt = g.motion.Add(g.restingBall(), collision.Zero, collision.Zero)
	g.serve()
}

func (g *Game) restingBall() collision.Vec2 {
	return collision.V(g.paddleX, g.paddleY-g.paddleHalf.Y-ballHalf-0.05)
}

func (g *Game) serve() {
	g.state = StateServe
	g.serveDelay = 15
	g.motion.SetPosition(g.ballPt, g.restingBall())
	g.motion.SetVelocity(g.ballPt, collision.Zero)
}

func (g *Game) launch() {
	speed := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.value(poolScore), g.tickCount)
	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	g.motion.SetVelocity(g.ballPt, collision.V(dir*speed*0.5, -speed))
	g.state = StatePlaying
}

// find resolves an external id to the body's current index.
func (g *Game) find(id entity) int {
	i, ok := g.world.Find(id)
	if !ok {
		panic(fmt.Sprintf("breakout: no body %+v", id))
	}
	return i
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.updatePaddle(in)

	switch g.state {
	case StateServe:
		g.motion.SetPosition(g.ballPt, g.restingBall())
		if g.serveDelay > 0 {
			g.serveDelay--
		} else if in.Has(core.ActionServe) || in.Has(core.ActionUp) {
			g.launch()
		}
	case StatePlaying:
		g.motion.Update()
	}

	g.sync()
	g.world.Update()
	g.motion.SetPosition(g.ballPt, g.world.Center(g.find(ballID)))

	g.contacts = g.world.Stats().Contacts
	if g.state == StatePlaying {
		missed := g.react()
		g.pools.Update()
		g.settle(missed)
	}

	return core.StepResult{State: g.State(), Contacts: g.contacts}
}

func (g *Game) updatePaddle(in core.InputFrame) {
	g.paddleX += in.Axis(core.ActionLeft, core.ActionRight) * g.cfg.Physics.PaddleSpeed
	g.paddleX = core.ClampF(g.paddleX, 1.5+g.paddleHalf.X, g.width-1.5-g.paddleHalf.X)
}

func (g *Game) sync() {
	b := g.find(ballID)
	g.world.Apply(
		collision.SetCenter[entity]{Index: g.find(paddleID), Center: collision.V(g.paddleX, g.paddleY)},
		collision.SetCenter[entity]{Index: b, Center: g.motion.Position(g.ballPt)},
		collision.SetVelocity[entity]{Index: b, Velocity: g.motion.Velocity(g.ballPt)},
	)
}

// react bounces the ball, queues brick rewards, and removes the bricks hit
// this step. It reports whether the ball reached the floor.
func (g *Game) react() bool {
	events := g.world.Events()
	b := g.find(ballID)
	pos := g.world.Center(b)
	vel := g.motion.Velocity(g.ballPt)
	var hit []entity
	missed := false

	for _, c := range events {
		other, ok := c.Other(b)
		if !ok {
			continue
		}
		o := g.world.Body(other)
		switch o.ID.Kind {
		case kindWall:
			vel = arena.Reflect(vel, arena.BounceAxis(g.world, c, b), pos, o.Center)
		case kindPaddle:
			axis := arena.BounceAxis(g.world, c, b)
			vel = arena.Reflect(vel, axis, pos, o.Center)
			if axis.Y != 0 {
				offset := (pos.X - o.Center.X) / o.HalfExtent.X
				vel.X += offset * g.cfg.Physics.SpinFactor
			}
		case kindBrick:
			vel = arena.Reflect(vel, arena.BounceAxis(g.world, c, b), pos, o.Center)
			hit = append(hit, o.ID)
		case kindFloor:
			missed = true
		}
	}

	// Indices in events are stale once a brick goes; resolve each id again.
	for _, id := range hit {
		if i, ok := g.world.Find(id); ok {
			g.world.RemoveBody(i)
		}
		g.pools.Queue(
			resources.Change[string]{Pool: poolScore, Amount: g.cfg.Gameplay.BrickPoints},
			resources.Change[string]{Pool: poolBricks, Amount: -1},
		)
		g.destroyed++
		if n := g.cfg.Gameplay.SpeedUpEveryN; n > 0 && g.destroyed%n == 0 {
			vel = vel.Scale(1 + g.cfg.Gameplay.SpeedUpAmount)
		}
	}

	if missed {
		g.pools.Queue(resources.Change[string]{Pool: poolLives, Amount: -1})
	}
	g.motion.SetVelocity(g.ballPt, arena.ClampSpeed(vel, g.cfg.Physics.MaxBallSpeed))
	return missed
}

// settle acts on the pool values after the step's transactions.
func (g *Game) settle(missed bool) {
	switch {
	case g.value(poolBricks) == 0:
		if g.levelIndex+1 >= len(g.cfg.Bricks.Layouts) {
			g.state = StateWin
			return
		}
		g.loadLevel(g.levelIndex + 1)
	case missed && g.value(poolLives) == 0:
		g.state = StateGameOver
	case missed:
		g.serve()
		g.serveDelay = 30
	}
}

func (g *Game) value(pool string) int {
	v, _ := g.pools.Value(pool)
	return v
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.world.Each(func(_ int, b collision.Body[entity]) bool {
		switch b.ID.Kind {
		case kindWall:
			r := BorderVert
			if b.ID.Col == 0 {
				r = BorderHoriz
			}
			arena.DrawBody(dst, b, r, core.ColorGray)
		case kindBrick:
			color := core.BrickColors[b.ID.Row%len(core.BrickColors)]
			arena.DrawBody(dst, b, BrickChar, color)
		case kindPaddle:
			arena.DrawBody(dst, b, PaddleChar, core.ColorBrightCyan)
		case kindBall:
			arena.DrawBody(dst, b, BallChar, core.ColorBrightWhite)
		}
		return true
	})

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.value(poolScore)))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.value(poolLives)))

	level := fmt.Sprintf("Level: %d/%d %s", g.levelIndex+1, len(g.cfg.Bricks.Layouts), g.cfg.Bricks.Layouts[g.levelIndex].Name)
	dst.DrawText(dst.Width()-len(level)-1, 0, level)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		arena.DrawMessage(dst, "PAUSED", "Press P to resume")
	case g.state == StateServe:
		dst.DrawTextCenteredColor(int(g.paddleY)-3, "SPACE to launch", core.ColorYellow)
	case g.state == StateGameOver:
		arena.DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.value(poolScore)))
	case g.state == StateWin:
		arena.DrawMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.value(poolScore)))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.value(poolScore),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
