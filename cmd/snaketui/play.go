package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snaketui/internal/core"
	"snaketui/internal/games/snake"
	"snaketui/internal/platform/tui"
	"snaketui/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Change direction
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a PNG screenshot
  Q/Ctrl+C     - Quit

Examples:
  snaketui play
  snaketui play --config ./my-snake.yaml
  snaketui play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.Timing.Interval(),
		Seed:         flagSeed,
	}

	game := snake.New(gameCfg)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
