package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/logging"
)

var (
	flagTicks int
	flagEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Play a session without a screen: the autopilot follows the ball,
launches it and confirms every panel. The run stops at game over, at a
win, or after --ticks ticks, then prints a summary.

Runs with the same --seed and config are identical; the printed hash
can be compared across runs.

Examples:
  brickbreaker sim --seed 42
  brickbreaker sim --seed 42 --ticks 50000 --every 5000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagEvery, "every", 0, "Print progress every N ticks (0 = never)")
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Seed       int64
	Steps      int
	State      breakout.State
	HUD        breakout.HUD
	FinalScore int
	BricksLeft int
	Hash       uint64
}

// simulate runs the autopilot for at most maxSteps steps.
func simulate(g *breakout.Game, recorder *logging.Recorder, maxSteps, every int, progress func(step int, g *breakout.Game)) int {
	steps := 0
	for steps < maxSteps {
		res := g.Step(breakout.Autopilot(g))
		steps++
		recorder.Record(g.State(), res)

		if every > 0 && steps%every == 0 && progress != nil {
			progress(steps, g)
		}
		if res.State.Over {
			break
		}
	}
	return steps
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig(int(cfg.Field.Width), int(cfg.Field.Height))
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := breakout.New(cfg, rt)
	if err != nil {
		return err
	}
	logger.Info("simulation started", "seed", rt.Seed, "max_ticks", flagTicks)

	recorder := logging.NewRecorder(logger, g.State())
	steps := simulate(g, recorder, flagTicks, flagEvery, func(step int, g *breakout.Game) {
		hud := g.HUD()
		fmt.Printf("  step %-7d score %-6d level %d  lives %d  bricks %d\n",
			step, hud.Score, hud.Level, hud.Lives, g.BricksLeft())
	})

	snap := g.Snapshot()
	printSummary(simSummary{
		Seed:       rt.Seed,
		Steps:      steps,
		State:      g.State(),
		HUD:        g.HUD(),
		FinalScore: g.FinalScore(),
		BricksLeft: g.BricksLeft(),
		Hash:       snap.Hash(),
	})
	return nil
}

func printSummary(s simSummary) {
	fmt.Println()
	fmt.Println("Simulation summary:")
	fmt.Printf("  %-12s %d\n", "Seed", s.Seed)
	fmt.Printf("  %-12s %d\n", "Steps", s.Steps)
	fmt.Printf("  %-12s %s\n", "State", s.State)
	fmt.Printf("  %-12s %d\n", "Score", s.HUD.Score)
	fmt.Printf("  %-12s %d/%d\n", "Level", s.HUD.Level, breakout.TotalLevels)
	fmt.Printf("  %-12s %d\n", "Lives", s.HUD.Lives)
	fmt.Printf("  %-12s %d\n", "Bricks left", s.BricksLeft)
	if s.State == breakout.StateGameOver || s.State == breakout.StateWin {
		fmt.Printf("  %-12s %d\n", "Final score", s.FinalScore)
	}
	fmt.Printf("  %-12s %016x\n", "Hash", s.Hash)
}
