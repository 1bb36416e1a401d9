package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start in interactive menu mode.

Up/Down picks a game, Left/Right picks the difficulty, Enter plays and
Tab opens the scoreboard. Leaving a finished or paused match (B/Esc)
returns to the menu.

Examples:
  paddles menu
  paddles menu --fps 30
  paddles menu --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}
		cfg, preset = result.Config, result.Preset

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := newGame(result.GameID, flagConfig, preset)
			if err != nil {
				return err
			}
			model, err := tui.RunModel(game, store, cfg, tui.ModelOptions{Preset: preset, Logger: logger})
			if err != nil {
				return err
			}
			if model.IsQuitting() {
				return nil
			}
		}
	}
}
