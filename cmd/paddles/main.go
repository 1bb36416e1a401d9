// paddles plays collision-driven arcade games in the terminal.
//
// Usage:
//
//	paddles list              - List available games
//	paddles play <game>       - Play a game
//	paddles menu              - Pick games interactively
//	paddles serve             - Serve the menu over SSH
//	paddles scores <game>     - Show high scores for a game
//	paddles sim <game>        - Run a game headless and record the run
//	paddles config <game>     - Print or install a game's default config
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible play
//	--db <path>           - Database path (default: ~/.paddles/paddles.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/paddles/internal/games/breakout"
	_ "github.com/vovakirdan/paddles/internal/games/hockey"
	_ "github.com/vovakirdan/paddles/internal/games/pong"
	"github.com/vovakirdan/paddles/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "paddles",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddles",
	Short: "Paddles - bounce things around in your terminal",
	Long: `Paddles is a set of terminal arcade games built on one box collision
engine: pong against the CPU, breakout and air hockey.

Examples:
  paddles list
  paddles play pong
  paddles play breakout --difficulty hard
  paddles menu
  paddles serve --ssh :2222
  paddles scores hockey
  paddles sim pong --ticks 36000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
