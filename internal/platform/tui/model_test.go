package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/storage"
)

// fakeGame ends after a fixed number of steps with its step count as the
// score.
type fakeGame struct {
	steps    int
	endAfter int
	resets   int
	last     core.InputFrame
	cfgPath  string
	preset   config.DifficultyPreset
	paused   bool
}

func (g *fakeGame) ID() string    { return "tui-fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.paused = false
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && !g.over() {
		g.steps++
	}
	return core.StepResult{State: g.State(), Contacts: 2}
}

func (g *fakeGame) over() bool { return g.endAfter > 0 && g.steps >= g.endAfter }

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE") }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.over(), Paused: g.paused}
}

func (g *fakeGame) Controls() string { return "none" }

func (g *fakeGame) Configure(path string, preset config.DifficultyPreset) {
	g.cfgPath = path
	g.preset = preset
}

func init() {
	registry.Register("tui-fake", func() registry.Game { return &fakeGame{endAfter: 3} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func tick(m GameModel) GameModel {
	return send(m, TickMsg{Gen: m.gen})
}

func TestGameModelStepsOnOwnTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()

	m = tick(m)
	m = send(m, TickMsg{Gen: m.gen + 1000})

	if g.steps != 1 {
		t.Errorf("steps = %d, a tick from another generation must be dropped", g.steps)
	}
}

func TestGameModelForwardsInput(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()

	m = send(m, runes("w"))
	m = tick(m)
	if !g.last.Has(core.ActionUp) {
		t.Error("w should reach the game as Up")
	}

	m = tick(m)
	if g.last.Has(core.ActionUp) {
		t.Error("input should be cleared after each step")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endAfter: 3}
	m := NewGameModel(g, store, testConfig(), ModelOptions{Player: "ana", Preset: config.DifficultyHard})
	m.Init()

	for range 6 {
		m = tick(m)
	}

	scores, err := store.TopScores("tui-fake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.Score != 3 || s.Player != "ana" || s.Preset != "hard" {
		t.Errorf("saved %+v", s)
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	m = tick(m)
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = send(m, runes("r"))
	m = tick(m)

	if g.resets != 2 || m.gameState.GameOver {
		t.Errorf("resets = %d, over = %v; r after game over should restart", g.resets, m.gameState.GameOver)
	}
}

func TestGameModelIgnoresRestartMidMatch(t *testing.T) {
	g := &fakeGame{endAfter: 5}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	m = tick(m)

	m = send(m, runes("r"))
	m = tick(m)

	if g.resets != 1 || g.steps != 2 {
		t.Errorf("resets = %d, steps = %d; r mid-match should only reach the game as input", g.resets, g.steps)
	}
	if !g.last.Has(core.ActionRestart) {
		t.Error("the game should still see the restart action")
	}
}

func TestGameModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	m = tick(m)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-match")
	}

	m = send(m, runes("p"))
	m = tick(m)
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should leave the match")
	}
}

func TestGameModelStatsOverlay(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	m = tick(m)

	if view := m.View(); strings.Contains(view, "contacts") {
		t.Error("stats should start hidden")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if view := m.View(); !strings.Contains(view, "contacts 2") {
		t.Errorf("stats overlay missing from view:\n%s", view)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColor(0, 0, '#', core.ColorRed)
	s.SetColor(1, 0, '#', core.ColorRed)
	s.Set(2, 0, 'x')

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 4 {
		t.Errorf("first line prints %d columns, want 4", w)
	}
	if !strings.Contains(out, "##") || !strings.Contains(out, "x ") {
		t.Errorf("runes missing from %q", out)
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{Player: "ana", ConfigPath: "/tmp/x.yaml"})
	if m.ID() == "" {
		t.Fatal("session needs an id")
	}

	update := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	for i, info := range registry.List() {
		if info.ID == "tui-fake" {
			m.menu.cursor = i
		}
	}
	update(tea.KeyMsg{Type: tea.KeyRight})
	update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateGame {
		t.Fatalf("state = %v, enter should start the game", m.state)
	}
	g := m.game.game.(*fakeGame)
	if g.cfgPath != "/tmp/x.yaml" || g.preset != config.DifficultyHard {
		t.Errorf("game configured with %q %q", g.cfgPath, g.preset)
	}
	if m.game.opts.Player != "ana" {
		t.Errorf("player = %q", m.game.opts.Player)
	}

	for range 3 {
		update(TickMsg{Gen: m.game.gen})
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Fatalf("state = %v, back after game over should return to the menu", m.state)
	}
	if m.menu.Preset() != config.DifficultyHard {
		t.Error("menu should keep the chosen difficulty")
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScoreboard {
		t.Fatalf("state = %v, tab should open the scoreboard", m.state)
	}
	update(runes("b"))
	if m.state != stateMenu {
		t.Errorf("state = %v, b should leave the scoreboard", m.state)
	}
}
