// Package pong implements Pong against a CPU paddle on top of the collision
// engine. The player controls the left paddle.
package pong

import (
	"fmt"
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
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	WallChar   = '─'
)

const ballHalf = 0.5

// entity identifies a body in the collision world.
type entity uint8

const (
	wallTop entity = iota
	wallBottom
	goalLeft
	goalRight
	paddlePlayer
	paddleCPU
	ball
	entityCount
)

// side names a score pool.
type side string

const (
	sidePlayer side = "player"
	sideCPU    side = "cpu"
)

// Game implements the Pong game logic.
type Game struct {
	configPath string
	preset     config.DifficultyPreset
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	world   *collision.Engine[entity]
	handles [entityCount]collision.Handle
	motion  *motion.Points
	ballPt  int
	scores  *resources.Queued[side]

	width, height float64
	paddleHalf    collision.Vec2
	playerX, cpuX float64
	playerY, cpuY float64

	serving    bool
	serveDelay int
	gameOver   bool
	paused     bool
	winner     side
	rally      int
	tickCount  int
	contacts   int
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{preset: config.DifficultyNormal}
}

func (g *Game) ID() string    { return "pong" }
func (g *Game) Title() string { return "Pong" }

// Controls describes the keys shown in the menu.
func (g *Game) Controls() string {
	return "W/S or ↑/↓ move  P pause  R restart after game over"
}

// Configure sets the config file and difficulty preset used by the next
// Reset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) {
	g.configPath = path
	g.preset = preset
}

// Reset loads the config and rebuilds the world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPong(g.configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g.cfg = config.ApplyPongPreset(cfg, g.preset)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)

	h := core.Clamp(g.cfg.Paddles.Height, 2, max(runtime.ScreenH-4, 2))
	g.paddleHalf = collision.V(float64(max(g.cfg.Paddles.Width, 1))/2, float64(h)/2)
	g.playerX = float64(g.cfg.Paddles.Offset) + g.paddleHalf.X
	g.cpuX = g.width - float64(g.cfg.Paddles.Offset) - g.paddleHalf.X
	g.playerY = g.height / 2
	g.cpuY = g.height / 2

	g.buildWorld()

	g.scores = resources.NewQueued[side]()
	g.scores.AddPool(sidePlayer, 0, 0, g.cfg.Gameplay.WinScore)
	g.scores.AddPool(sideCPU, 0, 0, g.cfg.Gameplay.WinScore)

	g.gameOver = false
	g.paused = false
	g.winner = ""
	g.tickCount = 0
	g.contacts = 0

	g.startServe(sidePlayer)
}

func (g *Game) buildWorld() {
	g.world = collision.New[entity]()
	w, h := g.width, g.height
	add := func(e entity, center, half collision.Vec2, solid, fixed bool) {
		_, g.handles[e] = g.world.AddBody(center, half, collision.Zero, solid, fixed, e)
	}

	// Walls run past the side edges so the goal sensors never sit beside an
	// open corner.
	add(wallTop, collision.V(w/2, 0.5), collision.V(w/2+2, 0.5), true, true)
	add(wallBottom, collision.V(w/2, h-0.5), collision.V(w/2+2, 0.5), true, true)
	add(goalLeft, collision.V(-1, h/2), collision.V(0.5, h/2-1.5), false, true)
	add(goalRight, collision.V(w+1, h/2), collision.V(0.5, h/2-1.5), false, true)
	add(paddlePlayer, collision.V(g.playerX, g.playerY), g.paddleHalf, true, true)
	add(paddleCPU, collision.V(g.cpuX, g.cpuY), g.paddleHalf, true, true)
	add(ball, collision.V(w/2, h/2), collision.Splat(ballHalf), true, false)

	g.motion = motion.NewPoints()
	g.ballPt = g.motion.Add(collision.V(w/2, h/2), collision.Zero, collision.Zero)
}

// index resolves an entity to its current body index. Pong never removes
// bodies, so a stale handle is a programming error.
func (g *Game) index(e entity) int {
	i, err := g.world.Resolve(g.handles[e])
	if err != nil {
		panic(fmt.Sprintf("pong: %v", err))
	}
	return i
}

// startServe parks the ball in the middle and aims it at toward.
func (g *Game) startServe(toward side) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.rally = 0

	speed := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.totalScore(), g.tickCount)
	vx := speed
	if toward == sidePlayer {
		vx = -speed
	}
	angle := (g.rng.Float64() - 0.5) * 0.6
	g.motion.SetPosition(g.ballPt, collision.V(g.width/2, g.height/2))
	g.motion.SetVelocity(g.ballPt, collision.V(vx, speed*angle))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
	}

	g.movePlayer(in)
	g.moveCPU()

	if !g.serving {
		g.motion.Update()
	}

	g.sync()
	g.world.Update()
	g.motion.SetPosition(g.ballPt, g.world.Center(g.index(ball)))

	scorer := g.react()
	g.scores.Update()
	g.settle(scorer)

	return core.StepResult{State: g.State(), Contacts: g.contacts}
}

func (g *Game) movePlayer(in core.InputFrame) {
	g.playerY += in.Axis(core.ActionUp, core.ActionDown) * g.cfg.Physics.PaddleSpeed
	g.playerY = g.clampPaddle(g.playerY)
}

// moveCPU tracks the ball while it approaches, at a speed set by skill.
func (g *Game) moveCPU() {
	vel := g.motion.Velocity(g.ballPt)
	if vel.X <= 0 {
		return
	}

	skill := g.difficulty.Skill(g.cfg.CPU, g.totalScore(), g.tickCount)
	step := g.cfg.Physics.PaddleSpeed * skill
	diff := g.motion.Position(g.ballPt).Y - g.cpuY
	if diff > step {
		g.cpuY += step
	} else if diff < -step {
		g.cpuY -= step
	}
	g.cpuY = g.clampPaddle(g.cpuY)
}

func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 1+g.paddleHalf.Y, g.height-1-g.paddleHalf.Y)
}

// sync pushes paddle and ball state into the collision world.
func (g *Game) sync() {
	b := g.index(ball)
	g.world.Apply(
		collision.SetCenter[entity]{Index: g.index(paddlePlayer), Center: collision.V(g.playerX, g.playerY)},
		collision.SetCenter[entity]{Index: g.index(paddleCPU), Center: collision.V(g.cpuX, g.cpuY)},
		collision.SetCenter[entity]{Index: b, Center: g.motion.Position(g.ballPt)},
		collision.SetVelocity[entity]{Index: b, Velocity: g.motion.Velocity(g.ballPt)},
	)
}

// react turns this step's contacts into bounces and queued score changes.
// It returns the side that scored, if any.
func (g *Game) react() side {
	events := g.world.Events()
	g.contacts = len(events)

	b := g.index(ball)
	pos := g.world.Center(b)
	vel := g.motion.Velocity(g.ballPt)
	var scorer side

	for _, c := range events {
		other, ok := c.Other(b)
		if !ok {
			continue
		}
		o := g.world.Body(other)
		switch o.ID {
		case wallTop, wallBottom:
			vel = arena.Reflect(vel, arena.BounceAxis(g.world, c, b), pos, o.Center)
		case paddlePlayer, paddleCPU:
			axis := arena.BounceAxis(g.world, c, b)
			vel = arena.Reflect(vel, axis, pos, o.Center)
			if axis.X != 0 {
				vel = g.paddleHit(vel, pos, o)
			}
		case goalLeft:
			scorer = sideCPU
		case goalRight:
			scorer = sidePlayer
		}
	}

	if scorer != "" && !g.serving {
		g.scores.Queue(resources.Change[side]{Pool: scorer, Amount: 1})
	}
	g.motion.SetVelocity(g.ballPt, vel)
	return scorer
}

// paddleHit adds spin from the hit offset and speeds the rally up.
func (g *Game) paddleHit(vel, pos collision.Vec2, paddle collision.Body[entity]) collision.Vec2 {
	offset := (pos.Y - paddle.Center.Y) / paddle.HalfExtent.Y
	vel.Y += offset * g.cfg.Physics.SpinFactor
	vel.X *= 1.02
	g.rally++
	return arena.ClampSpeed(vel, g.cfg.Physics.MaxBallSpeed)
}

// settle reads the finished score transactions and serves again after a goal.
func (g *Game) settle(scorer side) {
	if scorer == "" || g.serving {
		return
	}
	for _, r := range g.scores.Completed() {
		if !r.OK() {
			continue
		}
		for _, pool := range r.Pools {
			if v, _ := g.scores.Value(pool); v >= g.cfg.Gameplay.WinScore {
				g.gameOver = true
				g.winner = pool
			}
		}
	}
	if !g.gameOver {
		g.startServe(scorer)
	}
}

func (g *Game) score(s side) int {
	v, _ := g.scores.Value(s)
	return v
}

func (g *Game) totalScore() int {
	return g.score(sidePlayer) + g.score(sideCPU)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	g.world.Each(func(_ int, b collision.Body[entity]) bool {
		switch b.ID {
		case wallBottom:
			arena.DrawBody(dst, b, WallChar, core.ColorGray)
		case paddlePlayer:
			arena.DrawBody(dst, b, PaddleChar, core.ColorCyan)
		case paddleCPU:
			arena.DrawBody(dst, b, PaddleChar, core.ColorRed)
		case ball:
			if !g.serving || (g.serveDelay/10)%2 == 0 {
				arena.DrawBody(dst, b, BallChar, core.ColorBrightWhite)
			}
		}
		return true
	})

	g.renderHUD(dst)

	if g.paused {
		arena.DrawMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		msg := "CPU WINS!"
		if g.winner == sidePlayer {
			msg = "YOU WIN!"
		}
		arena.DrawMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.score(sidePlayer), g.score(sideCPU)))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	centerX := dst.Width() / 2
	dst.DrawTextColor(1, 0, "P1", core.ColorCyan)
	dst.DrawTextColor(dst.Width()-4, 0, "CPU", core.ColorRed)
	dst.DrawTextColor(centerX-5, 0, fmt.Sprintf("%d", g.score(sidePlayer)), core.ColorBrightWhite)
	dst.DrawTextColor(centerX+4, 0, fmt.Sprintf("%d", g.score(sideCPU)), core.ColorBrightWhite)
	if g.rally > 2 {
		dst.DrawTextColor(centerX+10, 0, fmt.Sprintf("rally %d", g.rally), core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(sidePlayer),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
