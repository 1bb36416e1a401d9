package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/storage"
)

// ModelOptions tunes a GameModel beyond the runtime config.
type ModelOptions struct {
	// Player is stored with saved scores. Empty means storage.LocalPlayer.
	Player string
	Preset config.DifficultyPreset
	// ShowStats starts with the contact counter visible. Tab toggles it.
	ShowStats bool
	// Logger receives score-save failures. Nil discards them.
	Logger *log.Logger
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        uint64
	tick       uint64
	contacts   int
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel wraps game. The game is reset by Init.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gen:        nextGen(),
	}
}

// Init resets the game and starts the clock.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.opts.ShowStats = !m.opts.ShowStats
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, m.exitCmd()
	}

	if m.keys.MapKey(msg) == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, m.exitCmd()
	}

	return m, nil
}

// exitCmd quits the program only when the model runs on its own; inside a
// session the parent model decides what comes next.
func (m GameModel) exitCmd() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The field is laid out from the screen size, so a live match restarts.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.tick = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.contacts = result.Contacts
	m.tick++

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(m.game.ID(), m.opts.Player, string(m.opts.Preset), m.gameState.Score)
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "player", m.opts.Player, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.paddles/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".paddles", "screenshots")
	//nolint:errcheck // best-effort
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // best-effort
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.opts.ShowStats {
		drawStats(m.screen, m.contacts, m.tick)
	}
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to leave entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left a finished or paused match.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	_, err := RunModel(game, store, cfg, opts)
	return err
}

// RunModel is Run that also returns the final model, so a caller can tell a
// quit from a return to the menu.
func RunModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (GameModel, error) {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(GameModel); ok {
		return m, nil
	}
	return model, nil
}
