package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snaketui/internal/platform/tui"
	"snaketui/internal/storage"
)

var (
	flagBrowse bool
	flagPlayer string
	flagStats  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

With --browse, opens an interactive scrollable table instead of
printing to stdout.

Examples:
  snaketui scores
  snaketui scores --limit 25
  snaketui scores --player alice
  snaketui scores --stats
  snaketui scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open an interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show scores for this player")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics instead of the score list")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagStats {
		printStats(store)
		return
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snaketui play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.HighScore(); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Snake - Statistics")
	fmt.Println()
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total points: %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
