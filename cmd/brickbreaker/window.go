package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open a window and play with the mouse.

Controls:
  Mouse          - Move the paddle
  Click          - Launch the ball / press panel buttons
  Enter/Space    - Same as the panel button, or launch
  Esc/Q          - Quit

Examples:
  brickbreaker window
  brickbreaker window --scale 0.75 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if flagScale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", flagScale)
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

	return window.Run(cfg, rt, logger, flagScale)
}
