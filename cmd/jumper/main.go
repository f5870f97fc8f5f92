// jumper is a side-scrolling jump and coin arcade game.
//
// Usage:
//
//	jumper play      - Play in the terminal
//	jumper window    - Play in a desktop window
//	jumper serve     - Start SSH server for remote play
//	jumper scores    - Show the high-score list and run history
//	jumper config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run history database path (default: ~/.jumper/jumper.db)
//	--highscores <path>  - Override the high-score file path
//	--backend <name>     - High-score backend: file, gdata or sqlite
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagHighScores string
	flagBackend    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jump Action - dodge obstacles and grab coins",
	Long: `Jump Action is a side-scrolling arcade game. Jump over the obstacles,
collect coins and survive as the world speeds up.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  config   - Print the effective configuration

Examples:
  jumper play
  jumper play --difficulty hard --coins anchored
  jumper window
  jumper serve --ssh :2222
  jumper scores`,
	SilenceUsage: true,
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func init() {
	// A .env file is optional
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("JUMPER_DB", "~/.jumper/jumper.db"), "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScores, "highscores", envOr("JUMPER_HIGHSCORES", ""), "Path to high-score file (file backend)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", envOr("JUMPER_BACKEND", ""), "High-score backend: file, gdata, sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("JUMPER_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envOr("JUMPER_LOG_FILE", ""), "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
