package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Mouse          - Move the paddle
  Click/Space    - Launch the ball
  Left/Right     - Move the paddle (keyboard)
  Enter          - Start / Next level / Restart
  Ctrl+S         - Save a screenshot of the field
  ?              - Show all keys
  Q/Ctrl+C       - Quit

The alternate screen owns the terminal, so logs are dropped unless
--log-file is given.

Examples:
  brickbreaker play
  brickbreaker play --seed 7 --log-file game.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Get terminal size for the first frame; resize messages follow
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cfg, rt, logger)
}
