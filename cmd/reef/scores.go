package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs and overall stats.

On a terminal this opens an interactive table; when piped it prints
plain text.

Examples:
  reef scores
  reef scores --limit 5 | cat
  reef scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print when not on a terminal")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store, flagLimit)
}

// printScores writes the top runs as plain text.
func printScores(store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Reef Runner - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'reef play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "Rank", "Score", "Speed", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for i, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4d  %-7s  %-6s  %-8s  %s\n", i+1, row[1], row[2], row[3], runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
	return nil
}
