package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snaketui/internal/export"
	"snaketui/internal/games/snake"
)

var (
	flagOut   string
	flagTicks int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a game frame to a PNG",
	Long: `Render a frame of the game board to a PNG file.

By default the opening frame is rendered. With --ticks the game is
simulated forward first, which together with --seed produces a
reproducible frame.

Examples:
  snaketui export
  snaketui export --out board.png
  snaketui export --seed 42 --ticks 10`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "snake.png", "Output file path")
	exportCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to simulate before rendering")
}

func runExport(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	game := snake.New(gameCfg)
	game.Reset(flagSeed)

	for i := 0; i < flagTicks && game.Running(); i++ {
		game.Tick()
	}

	if err := export.SaveFrame(flagOut, game); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing frame: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", flagOut)
}
