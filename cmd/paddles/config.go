package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/registry"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config YAML",
	Long: `Print the built-in config for a game. With --write the file is saved to
~/.paddles/configs/<game>.yaml, where play, menu and serve pick it up.

Examples:
  paddles config pong > my-pong.yaml
  paddles config breakout --write`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Save to the user config directory instead of printing")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, gameID)
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("%s has no config file", gameID)
	}

	if !flagConfigWrite {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, config.UserConfigDir, gameID+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("config written", "game", gameID, "path", path)
	return nil
}
