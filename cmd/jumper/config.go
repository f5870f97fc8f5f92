package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML, after
applying the config file, the difficulty preset and command-line overrides.

The output is a valid config file:
  jumper config > ~/.jumper/configs/jumper.yaml

With --defaults, print the built-in defaults file with its comments instead:
  jumper config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}
