package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.brickbreaker/configs/breakout.yaml or ./configs/breakout.yaml and edit
it, or pass it with --config.

With --effective, prints the configuration after loading --config and
the search path instead.

Examples:
  brickbreaker config > breakout.yaml
  brickbreaker config --effective --config ./breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
