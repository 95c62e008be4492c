package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 500x500 board with a unit
// size of 25, a 75 ms tick and a 5-segment starting snake.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  500,
			Height: 500,
			Unit:   25,
		},
		Timing: TimingConfig{
			TickMS: 75,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
		},
		Colors: ColorConfig{
			Board:       "#1a1a24",
			SnakeFill:   "#96dc8c",
			SnakeBorder: "#2e6e3c",
			Food:        "#ff5050",
			GameOver:    "#ffd700",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
