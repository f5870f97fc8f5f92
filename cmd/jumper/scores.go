package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/highscore"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagRecent int
	flagTop    int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top-5 high-score list from the configured backend,
followed by statistics and the most recent runs from the history database.

Examples:
  jumper scores
  jumper scores --backend gdata
  jumper scores --recent 20
  jumper scores --top 10      # Best runs ever played, with coins and level
  jumper scores --clear       # Delete the run history (the top-5 list is kept)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent runs to show")
	scoresCmd.Flags().IntVar(&flagTop, "top", 0, "Show the N best runs from the history instead of recent runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	a, err := openApp(os.Stderr, "jumper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if flagClear {
		if a.history == nil {
			fmt.Fprintln(os.Stderr, "Error: run history database is not available")
			return
		}
		if err := a.history.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	list := highscore.NewList(a.cfg.Scoring.HighScoreLimit, a.scores.Load())

	fmt.Printf("High Scores (%s)\n", a.cfg.Persistence.Backend)
	fmt.Println()

	if list.Len() == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %s\n", "Rank", "Score")
		fmt.Printf("  %-4s  %s\n", "----", "-----")
		for i, s := range list.Scores() {
			fmt.Printf("  %-4d  %d\n", i+1, s)
		}
		fmt.Println()
		fmt.Printf("Best: %d\n", list.Best())
	}

	if a.history == nil {
		return
	}

	stats, err := a.history.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run stats: %v\n", err)
		return
	}
	if stats.RunsCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Coins: %d  Max level: %d\n",
		stats.RunsCount, stats.BestScore, stats.AvgScore, stats.TotalCoins, stats.MaxLevel)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	title := "Recent Runs"
	var runs []storage.RunEntry
	if flagTop > 0 {
		title = "Best Runs"
		runs, err = a.history.TopRuns(flagTop)
	} else {
		runs, err = a.history.RecentRuns(flagRecent)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println(title)
	fmt.Println()
	printRuns(runs)
}

func printRuns(runs []storage.RunEntry) {
	fmt.Printf("  %-10s  %-6s  %-6s  %-5s  %s\n", "Score", "Coins", "Level", "Rank", "Date")
	fmt.Printf("  %-10s  %-6s  %-6s  %-5s  %s\n", "-----", "-----", "-----", "----", "----")
	for _, r := range runs {
		rank := "-"
		if r.Rank > 0 {
			rank = fmt.Sprintf("#%d", r.Rank)
		}
		fmt.Printf("  %-10d  %-6d  %-6d  %-5s  %s\n",
			r.Score, r.CoinsCollected, r.DifficultyLevel, rank, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
