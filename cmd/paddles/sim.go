package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
	"github.com/vovakirdan/paddles/internal/registry"
	"github.com/vovakirdan/paddles/internal/storage"
)

var (
	flagSimTicks  int
	flagSimInput  string
	flagSimWidth  int
	flagSimHeight int
	flagSimSave   bool
	flagSimRecent int
	flagSimRun    string
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless and record the run",
	Long: `Step a game without a terminal for a fixed number of ticks and report
the score and how many contacts the collision engine produced. Runs are
saved to the database unless --save=false.

Input policies:
  idle    - press nothing except serve
  random  - hold a random action for a few ticks at a time

The same --seed, size and policy always give the same run.

Examples:
  paddles sim pong --ticks 36000 --seed 7
  paddles sim breakout --input idle
  paddles sim hockey --recent 5
  paddles sim pong --run <run-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of steps to run")
	simCmd.Flags().StringVar(&flagSimInput, "input", "random", "Input policy: idle, random")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Field width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Field height in cells")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset")
	simCmd.Flags().BoolVar(&flagSimSave, "save", true, "Record the run in the database")
	simCmd.Flags().IntVar(&flagSimRecent, "recent", 0, "List this many recent runs instead of simulating")
	simCmd.Flags().StringVar(&flagSimRun, "run", "", "Show one recorded run instead of simulating")
}

// inputPolicy produces the input for each tick.
type inputPolicy func(tick int) core.InputFrame

func newPolicy(name string, seed int64) (inputPolicy, error) {
	switch name {
	case "idle":
		return func(int) core.InputFrame {
			return core.InputOf(core.ActionServe)
		}, nil

	case "random":
		rng := rand.New(rand.NewSource(seed))
		actions := []core.Action{
			core.ActionNone, core.ActionUp, core.ActionDown,
			core.ActionLeft, core.ActionRight, core.ActionServe,
		}
		var held core.Action
		return func(tick int) core.InputFrame {
			if tick%8 == 0 {
				held = actions[rng.Intn(len(actions))]
			}
			if held == core.ActionNone {
				return core.NewInputFrame()
			}
			return core.InputOf(held)
		}, nil
	}
	return nil, fmt.Errorf("unknown input policy %q", name)
}

// simResult sums up one headless run.
type simResult struct {
	Ticks    int
	Score    int
	Contacts int64
	GameOver bool
	Duration time.Duration
}

// simulate steps game until ticks run out or the match ends.
func simulate(game registry.Game, cfg core.RuntimeConfig, ticks int, policy inputPolicy) simResult {
	game.Reset(cfg)

	var res simResult
	start := time.Now()
	for res.Ticks < ticks {
		step := game.Step(policy(res.Ticks))
		res.Ticks++
		res.Contacts += int64(step.Contacts)
		res.Score = step.State.Score
		if step.State.GameOver {
			res.GameOver = true
			break
		}
	}
	res.Duration = time.Since(start)
	return res
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	switch {
	case flagSimRun != "":
		return showRun(cmd, gameID, flagSimRun)
	case flagSimRecent > 0:
		return listRuns(cmd, gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	game, err := newGame(gameID, flagConfig, preset)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy, err := newPolicy(flagSimInput, seed)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With("run", runID, "game", gameID)
	log.Debug("simulating", "seed", seed, "ticks", flagSimTicks, "input", flagSimInput, "preset", preset)

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}
	res := simulate(game, cfg, flagSimTicks, policy)

	log.Info("run finished",
		"ticks", humanize.Comma(int64(res.Ticks)),
		"score", res.Score,
		"contacts", humanize.Comma(res.Contacts),
		"game_over", res.GameOver,
		"took", res.Duration.Round(time.Millisecond),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s ticks  score %s  %s contacts  seed %d\n",
		runID, humanize.Comma(int64(res.Ticks)), humanize.Comma(int64(res.Score)),
		humanize.Comma(res.Contacts), seed)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveRun(storage.SimRun{
		RunID:    runID,
		GameID:   gameID,
		Seed:     seed,
		Ticks:    res.Ticks,
		Score:    res.Score,
		Contacts: res.Contacts,
		Duration: res.Duration,
	})
	return err
}

func listRuns(cmd *cobra.Command, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, gameID)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagSimRecent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintf(out, "No runs recorded for %s yet.\n", gameID)
		return nil
	}
	fmt.Fprintf(out, "  %-36s  %20s  %10s  %8s  %12s  %s\n", "Run", "Seed", "Ticks", "Score", "Contacts", "When")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-36s  %20d  %10s  %8d  %12s  %s\n",
			r.RunID, r.Seed, humanize.Comma(int64(r.Ticks)), r.Score,
			humanize.Comma(r.Contacts), humanize.Time(r.CreatedAt))
	}
	return nil
}

func showRun(cmd *cobra.Command, gameID, runID string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil || r.GameID != gameID {
		return fmt.Errorf("no %s run with id %s", gameID, runID)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run       %s\n", r.RunID)
	fmt.Fprintf(out, "game      %s\n", r.GameID)
	fmt.Fprintf(out, "seed      %d\n", r.Seed)
	fmt.Fprintf(out, "ticks     %s\n", humanize.Comma(int64(r.Ticks)))
	fmt.Fprintf(out, "score     %d\n", r.Score)
	fmt.Fprintf(out, "contacts  %s\n", humanize.Comma(r.Contacts))
	fmt.Fprintf(out, "took      %s\n", r.Duration)
	fmt.Fprintf(out, "recorded  %s\n", humanize.Time(r.CreatedAt))
	return nil
}
