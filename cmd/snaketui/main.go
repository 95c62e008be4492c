// snaketui is a terminal snake game with local and SSH play.
//
// Usage:
//
//	snaketui play            - Play in the current terminal
//	snaketui serve           - Start SSH server for remote play
//	snaketui scores          - Show high scores
//	snaketui export          - Render the opening frame to a PNG
//
// Global flags:
//
//	--config <path> - Path to a custom game config YAML
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.snaketui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snaketui/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketui",
	Short: "Snake - classic snake in your terminal",
	Long: `Snake is a terminal rendition of the classic game: steer the snake
to the food, grow one segment per bite, and avoid the walls and
your own tail.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  export   - Render the opening frame to a PNG

Examples:
  snaketui play
  snaketui play --config ./my-snake.yaml
  snaketui serve --ssh :2222
  snaketui scores --browse`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketui/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadGameConfig loads the game config honoring the --config flag,
// printing an error and exiting on failure.
func loadGameConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
