package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the campaign layouts",
	Long:  `Shows every level of the campaign with its brick count and a preview.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderLevels(breakout.Layouts(), cfg.Bricks.Columns, cfg.Bricks.Rows))
	fmt.Println()
	fmt.Println("Run 'brickbreaker play' to start at level 1.")
	return nil
}
