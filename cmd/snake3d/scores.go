package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake3d/internal/platform/tui"
	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [frontend]",
	Short: "Show high scores for a frontend",
	Long: `Display the high scores recorded on the given frontend's board
(default: window). On a terminal the interactive scoreboard opens; use
tab/shift+tab to switch boards. Otherwise the top 10 are printed.

Examples:
  snake3d scores
  snake3d scores terminal
  snake3d scores --plain | head
  snake3d scores terminal --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores on the board")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runScores(_ *cobra.Command, args []string) error {
	board := defaultFrontend
	if len(args) > 0 {
		board = args[0]
	}

	frontend, err := registry.Get(board)
	if err != nil {
		return fmt.Errorf("%w\nRun 'snake3d list' to see available frontends", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(board); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", frontend.Title())
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height, board)
	}

	return printScores(store, board, frontend.Title())
}

// printScores writes the top 10 of a board as plain text.
func printScores(store *storage.Store, board, title string) error {
	scores, err := store.TopScores(board, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake3d play --frontend %s' to set the first high score!\n", board)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	stats, err := store.Stats(board)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
