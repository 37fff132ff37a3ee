package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/platform/tui"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

const recentRuns = 5

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run statistics",
	Long: `Display the top scores and aggregated statistics of past runs.

Examples:
  sacrifice scores
  sacrifice scores --limit 25
  sacrifice scores --clear
  sacrifice scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(sacrifice.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, sacrifice.ID, sacrifice.New().Title(), width, height)
	}

	return printScores(out, store, sacrifice.ID, flagLimit)
}

// printScores writes the high score table, the most recent runs and the
// aggregated statistics of a game.
func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Sacrifice Runner")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'sacrifice play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, recentRuns)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent runs")
		fmt.Fprintf(out, "  %-8s  %-8s  %-6s  %-10s  %-7s  %s\n", "Score", "Frames", "Jumps", "Sacrifices", "Damage", "Healed")
		for _, r := range runs {
			fmt.Fprintf(out, "  %-8d  %-8d  %-6d  %-10d  %-7d  %d\n",
				r.Score, r.Frames, r.Jumps, r.Sacrifices, r.DamageTaken, r.Healed)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	fmt.Fprintf(out, "Longest run: %d frames  Jumps: %d  Sacrifices: %d\n",
		stats.LongestRun, stats.TotalJumps, stats.TotalSacrifices)
	return nil
}
