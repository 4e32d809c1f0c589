// brickbreaker is a Breakout/Arkanoid clone for the terminal and the desktop.
//
// Usage:
//
//	brickbreaker play        - Play in the terminal
//	brickbreaker window      - Play in a graphical window
//	brickbreaker sim         - Run a headless autopilot session
//	brickbreaker levels      - Show the campaign layouts
//	brickbreaker config      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - knock out every brick across three levels",
	Long: `Brick Breaker is a Breakout/Arkanoid clone. Steer the paddle, keep the
balls in play and clear the Classic, Pyramid and Checkerboard walls.
Falling power-ups widen the paddle or split the ball in three.

Available commands:
  play     - Play in the terminal (mouse or keyboard)
  window   - Play in a graphical window
  sim      - Run a headless autopilot session
  levels   - Show the campaign layouts
  config   - Print the default configuration

Examples:
  brickbreaker play
  brickbreaker window --scale 1.5
  brickbreaker sim --seed 42 --ticks 20000
  brickbreaker play --config ./breakout.yaml --log-file game.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the global flags.
// A zero seed is replaced with a time-based one.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}, nil
}

// loadConfig loads the game config named by --config, or the defaults.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

// openLogger creates the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned closer must be called on exit.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger, err := logging.New(w, flagLogLevel, "brickbreaker")
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}
