package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for a game, with a summary of every saved
match. Without a game, summarize every game that has scores.

Examples:
  paddles scores
  paddles scores pong
  paddles scores breakout --limit 25
  paddles scores pong --all
  paddles scores hockey --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved score for the game")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every saved score instead of the top --limit")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runScoresSummary(cmd)
	}
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'paddles list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'paddles play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %10s  %-7s  %s\n", "Rank", "Player", "Score", "Preset", "When")
	fmt.Fprintf(out, "  %-4s  %-16s  %10s  %-7s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %10s  %-7s  %s\n",
			i+1, e.Player, humanize.Comma(int64(e.Score)), e.Preset, humanize.Time(e.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s matches, best %s, average %.1f, last played %s\n",
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.HighScore)),
		stats.AvgScore,
		humanize.Time(stats.LastPlayed),
	)
	return nil
}

// runScoresSummary prints one line per game that has saved scores.
func runScoresSummary(cmd *cobra.Command) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %8s  %10s  %8s  %s\n", "Game", "Matches", "Best", "Average", "Last played")
	for _, id := range registry.IDs() {
		st, ok := all[id]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-10s  %8s  %10s  %8.1f  %s\n",
			id, humanize.Comma(int64(st.GamesCount)), humanize.Comma(int64(st.HighScore)),
			st.AvgScore, humanize.Time(st.LastPlayed))
	}
	return nil
}
