package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/platform/tui"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStats      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S, Up/Down   - Move paddle (pong, hockey)
  A/D, Left/Right - Move paddle (breakout, hockey)
  Space          - Serve / launch
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Leave a paused or finished match
  Tab            - Toggle contact counter
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  paddles play pong
  paddles play breakout --difficulty easy
  paddles play hockey --config ./my-hockey.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagStats, "stats", false, "Show the contact counter from the start")
}

func runPlay(_ *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	game, err := newGame(args[0], flagConfig, preset)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, terminalConfig(), tui.ModelOptions{
		Preset:    preset,
		ShowStats: flagStats,
		Logger:    logger,
	})
}

// newGame creates game id and hands it the config file and preset.
func newGame(id, configPath string, preset config.DifficultyPreset) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'paddles list' to see available games)", err)
	}
	if c, ok := game.(registry.Configurable); ok {
		c.Configure(configPath, preset)
	}
	return game, nil
}

// terminalConfig sizes the runtime config from stdout, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
