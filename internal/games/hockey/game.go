// Package hockey implements air hockey against a CPU. Both mallets and the
// puck are movable bodies, so pushes are shared by how fast each one moves.
package hockey

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

const (
	MalletChar = '█'
	PuckChar   = '●'
	LineChar   = '┊'
	WallHoriz  = '─'
	WallVert   = '│'
)

const puckHalf = 0.5

// idleFaceOffTicks is how long the puck may go untouched by either mallet
// before it is served again.
const idleFaceOffTicks = 480

type entity uint8

const (
	wallTop entity = iota
	wallBottom
	wallLeftUpper
	wallLeftLower
	wallRightUpper
	wallRightLower
	goalLeft
	goalRight
	malletPlayer
	malletCPU
	puck
	entityCount
)

// movers are the bodies integrated by the motion stage, in point order.
var movers = [...]entity{malletPlayer, malletCPU, puck}

type side string

const (
	sidePlayer side = "player"
	sideCPU    side = "cpu"
)

type Game struct {
	configPath string
	preset     config.DifficultyPreset
	cfg        config.HockeyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	world   *collision.Engine[entity]
	handles [entityCount]collision.Handle
	motion  *motion.Points
	points  map[entity]int // motion point per moving body
	scores  *resources.Queued[side]

	width, height float64
	mid           float64 // y of the goal mouths
	malletHalf    collision.Vec2

	serving    bool
	serveDelay int
	serveVel   collision.Vec2
	idle       int // ticks since a mallet last touched the puck
	gameOver   bool
	paused     bool
	winner     side
	tickCount  int
	contacts   int
}

func New() *Game {
	return &Game{preset: config.DifficultyNormal}
}

func (g *Game) ID() string    { return "hockey" }
func (g *Game) Title() string { return "Air Hockey" }

func (g *Game) Controls() string {
	return "WASD or arrows move  P pause  R restart after game over"
}

// Configure sets the config file and difficulty preset used by the next
// Reset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) {
	g.configPath = path
	g.preset = preset
}

func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadHockey(g.configPath)
	if err != nil {
		cfg = config.DefaultHockeyConfig()
	}
	g.cfg = config.ApplyHockeyPreset(cfg, g.preset)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)
	g.mid = (g.height + 1) / 2
	g.malletHalf = collision.V(float64(max(g.cfg.Mallet.Width, 1))/2, float64(max(g.cfg.Mallet.Height, 1))/2)

	g.buildRink(core.Clamp(g.cfg.Rink.GoalHeight, 2, max(runtime.ScreenH-6, 2)))

	g.scores = resources.NewQueued[side]()
	g.scores.AddPool(sidePlayer, 0, 0, g.cfg.Gameplay.WinScore)
	g.scores.AddPool(sideCPU, 0, 0, g.cfg.Gameplay.WinScore)

	g.gameOver = false
	g.paused = false
	g.winner = ""
	g.tickCount = 0
	g.contacts = 0

	g.faceOff(sidePlayer)
}

// buildRink lays out walls with a goal gap of goalH rows in each side wall.
// Wall segments stop half a cell short of each other so they never touch.
func (g *Game) buildRink(goalH int) {
	w, h, mid := g.width, g.height, g.mid
	gh := float64(goalH) / 2

	g.world = collision.New[entity]()
	add := func(e entity, center, half collision.Vec2, solid, fixed bool) {
		_, g.handles[e] = g.world.AddBody(center, half, collision.Zero, solid, fixed, e)
	}
	segment := func(e entity, x, y0, y1 float64) {
		add(e, collision.V(x, (y0+y1)/2), collision.V(0.5, max(y1-y0, 0)/2), true, true)
	}

	add(wallTop, collision.V(w/2, 1.5), collision.V(w/2-1.5, 0.5), true, true)
	add(wallBottom, collision.V(w/2, h-0.5), collision.V(w/2-1.5, 0.5), true, true)
	segment(wallLeftUpper, 0.5, 2.5, mid-gh)
	segment(wallLeftLower, 0.5, mid+gh, h-1.5)
	segment(wallRightUpper, w-0.5, 2.5, mid-gh)
	segment(wallRightLower, w-0.5, mid+gh, h-1.5)
	add(goalLeft, collision.V(-1, mid), collision.V(0.5, gh), false, true)
	add(goalRight, collision.V(w+1, mid), collision.V(0.5, gh), false, true)

	playerStart := collision.V(8, mid)
	cpuStart := collision.V(w-8, mid)
	puckStart := collision.V(w/2, mid)
	add(malletPlayer, playerStart, g.malletHalf, true, false)
	add(malletCPU, cpuStart, g.malletHalf, true, false)
	add(puck, puckStart, collision.Splat(puckHalf), true, false)

	g.motion = motion.NewPoints()
	g.points = map[entity]int{
		malletPlayer: g.motion.Add(playerStart, collision.Zero, collision.Zero),
		malletCPU:    g.motion.Add(cpuStart, collision.Zero, collision.Zero),
		puck:         g.motion.Add(puckStart, collision.Zero, collision.Zero),
	}
}

func (g *Game) index(e entity) int {
	i, err := g.world.Resolve(g.handles[e])
	if err != nil {
		panic(fmt.Sprintf("hockey: %v", err))
	}
	return i
}

// faceOff centers the puck; after the serve delay it slides toward toward.
func (g *Game) faceOff(toward side) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.idle = 0

	speed := g.difficulty.Speed(g.cfg.Physics.ServeSpeed, g.totalScore(), g.tickCount)
	vx := speed
	if toward == sidePlayer {
		vx = -speed
	}
	vy := (g.rng.Float64() - 0.5) * speed

	p := g.points[puck]
	g.motion.SetPosition(p, collision.V(g.width/2, g.mid))
	g.motion.SetVelocity(p, collision.Zero)
	g.motion.SetAcceleration(p, collision.Zero)
	g.serveVel = collision.V(vx, vy)
}

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

	p := g.points[puck]
	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
			g.motion.SetVelocity(p, g.serveVel)
		}
	}

	g.steerPlayer(in)
	g.steerCPU()
	g.motion.SetVelocity(p, g.motion.Velocity(p).Scale(g.cfg.Physics.Friction))
	g.motion.Update()
	g.clampMallets()

	g.sync()
	g.world.Update()
	for _, e := range movers {
		g.motion.SetPosition(g.points[e], g.world.Center(g.index(e)))
	}

	scorer := g.react()
	g.scores.Update()
	g.settle(scorer)
	g.checkIdle()

	return core.StepResult{State: g.State(), Contacts: g.contacts}
}

func (g *Game) steerPlayer(in core.InputFrame) {
	speed := g.cfg.Physics.MalletSpeed
	v := collision.V(
		in.Axis(core.ActionLeft, core.ActionRight),
		in.Axis(core.ActionUp, core.ActionDown),
	).Scale(speed)
	g.motion.SetVelocity(g.points[malletPlayer], v)
}

// steerCPU chases the puck while it is on the CPU's half and drifts back to
// guard the goal otherwise. Skill caps how fast it may move.
func (g *Game) steerCPU() {
	skill := g.difficulty.Skill(g.cfg.CPU, g.totalScore(), g.tickCount)
	step := g.cfg.Physics.MalletSpeed * skill

	pos := g.motion.Position(g.points[malletCPU])
	puckPos := g.motion.Position(g.points[puck])

	target := collision.V(g.width-8, g.mid)
	if puckPos.X > g.width/2 && !g.serving {
		// Come from behind so the push sends the puck toward the player.
		target = collision.V(puckPos.X+g.malletHalf.X, puckPos.Y)
	}

	d := target.Sub(pos)
	g.motion.SetVelocity(g.points[malletCPU], collision.V(
		core.ClampF(d.X, -step, step),
		core.ClampF(d.Y, -step, step),
	))
}

// clampMallets keeps each mallet on its own half of the rink.
func (g *Game) clampMallets() {
	hw, hh := g.malletHalf.X, g.malletHalf.Y
	clamp := func(e entity, minX, maxX float64) {
		pt := g.points[e]
		pos := g.motion.Position(pt)
		g.motion.SetPosition(pt, collision.V(
			core.ClampF(pos.X, minX, maxX),
			core.ClampF(pos.Y, 2+hh, g.height-1-hh),
		))
	}
	clamp(malletPlayer, 1+hw, g.width/2-hw)
	clamp(malletCPU, g.width/2+hw, g.width-1-hw)
}

func (g *Game) sync() {
	cmds := make([]collision.Command[entity], 0, 2*len(movers))
	for _, e := range movers {
		i, pt := g.index(e), g.points[e]
		cmds = append(cmds,
			collision.SetCenter[entity]{Index: i, Center: g.motion.Position(pt)},
			collision.SetVelocity[entity]{Index: i, Velocity: g.motion.Velocity(pt)},
		)
	}
	g.world.Apply(cmds...)
}

// react handles the puck's contacts: walls reflect it, mallets hand it their
// velocity on the axis they touched, goals queue a point.
func (g *Game) react() side {
	events := g.world.Events()
	g.contacts = len(events)

	pk := g.index(puck)
	pt := g.points[puck]
	pos := g.world.Center(pk)
	vel := g.motion.Velocity(pt)
	var scorer side

	for _, c := range events {
		other, ok := c.Other(pk)
		if !ok {
			continue
		}
		o := g.world.Body(other)
		switch o.ID {
		case goalLeft:
			scorer = sideCPU
		case goalRight:
			scorer = sidePlayer
		case malletPlayer, malletCPU:
			g.idle = 0
			axis := arena.BounceAxis(g.world, c, pk)
			vel = arena.Reflect(vel, axis, pos, o.Center)
			if axis.X != 0 {
				vel.X += o.Velocity.X
			}
			if axis.Y != 0 {
				vel.Y += o.Velocity.Y
			}
		default:
			vel = arena.Reflect(vel, arena.BounceAxis(g.world, c, pk), pos, o.Center)
		}
	}

	if scorer != "" && !g.serving {
		g.scores.Queue(resources.Change[side]{Pool: scorer, Amount: 1})
	}
	g.motion.SetVelocity(pt, arena.ClampSpeed(vel, g.cfg.Physics.MaxPuckSpeed))
	return scorer
}

func (g *Game) settle(scorer side) {
	if scorer == "" || g.serving {
		return
	}
	for _, r := range g.scores.Completed() {
		if !r.OK() {
			continue
		}
		for _, s := range r.Pools {
			if v, _ := g.scores.Value(s); v >= g.cfg.Gameplay.WinScore {
				g.gameOver = true
				g.winner = s
			}
		}
	}
	if !g.gameOver {
		// The side that conceded gets the puck.
		if scorer == sidePlayer {
			g.faceOff(sideCPU)
		} else {
			g.faceOff(sidePlayer)
		}
	}
}

// checkIdle serves again when the puck has sat untouched too long, toward
// the half it is not resting on. The CPU only chases on its own half, so a
// puck left on the player's side would otherwise stall the match.
func (g *Game) checkIdle() {
	if g.serving || g.gameOver {
		return
	}
	g.idle++
	if g.idle < idleFaceOffTicks {
		return
	}
	if g.motion.Position(g.points[puck]).X < g.width/2 {
		g.faceOff(sideCPU)
	} else {
		g.faceOff(sidePlayer)
	}
}

func (g *Game) score(s side) int {
	v, _ := g.scores.Value(s)
	return v
}

func (g *Game) totalScore() int {
	return g.score(sidePlayer) + g.score(sideCPU)
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	centerX := dst.Width() / 2
	for y := 2; y < dst.Height()-1; y++ {
		dst.SetColor(centerX, y, LineChar, core.ColorBlue)
	}

	g.world.Each(func(_ int, b collision.Body[entity]) bool {
		switch b.ID {
		case wallTop, wallBottom:
			arena.DrawBody(dst, b, WallHoriz, core.ColorGray)
		case wallLeftUpper, wallLeftLower, wallRightUpper, wallRightLower:
			arena.DrawBody(dst, b, WallVert, core.ColorGray)
		case malletPlayer:
			arena.DrawBody(dst, b, MalletChar, core.ColorCyan)
		case malletCPU:
			arena.DrawBody(dst, b, MalletChar, core.ColorRed)
		case puck:
			if !g.serving || (g.serveDelay/10)%2 == 0 {
				arena.DrawBody(dst, b, PuckChar, core.ColorBrightWhite)
			}
		}
		return true
	})

	dst.DrawTextColor(1, 0, fmt.Sprintf("P1 %d", g.score(sidePlayer)), core.ColorCyan)
	cpu := fmt.Sprintf("CPU %d", g.score(sideCPU))
	dst.DrawTextColor(dst.Width()-len(cpu)-1, 0, cpu, core.ColorRed)
	dst.DrawTextCentered(0, fmt.Sprintf("first to %d", g.cfg.Gameplay.WinScore))

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

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(sidePlayer),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("hockey", func() registry.Game {
		return New()
	})
}
