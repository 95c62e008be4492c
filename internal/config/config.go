// Package config provides YAML-based configuration for the snake game:
// board geometry, timing, the initial snake and color styling.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the game.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Snake  SnakeConfig  `yaml:"snake"`
	Colors ColorConfig  `yaml:"colors"`
}

// BoardConfig defines the playing field in pixel-style units.
// Width and height must be multiples of the unit size; every segment and
// food coordinate is a multiple of Unit.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Unit   int `yaml:"unit"`
}

// Cols returns the board width in units.
func (b BoardConfig) Cols() int {
	return b.Width / b.Unit
}

// Rows returns the board height in units.
func (b BoardConfig) Rows() int {
	return b.Height / b.Unit
}

// TimingConfig defines the tick schedule.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// Interval returns the tick delay as a duration.
func (t TimingConfig) Interval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// SnakeConfig defines the starting snake.
// The snake spawns horizontally on the top row with its head at
// x = (InitialLength-1) * unit, moving right.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// ColorConfig holds hex colors for the board and its contents.
type ColorConfig struct {
	Board       string `yaml:"board"`
	SnakeFill   string `yaml:"snake_fill"`
	SnakeBorder string `yaml:"snake_border"`
	Food        string `yaml:"food"`
	GameOver    string `yaml:"game_over_text"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Unit <= 0 {
		return fmt.Errorf("config: unit must be positive, got %d", c.Board.Unit)
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width%c.Board.Unit != 0 || c.Board.Height%c.Board.Unit != 0 {
		return fmt.Errorf("config: board %dx%d is not a multiple of unit %d",
			c.Board.Width, c.Board.Height, c.Board.Unit)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial snake length must be at least 1, got %d", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength*c.Board.Unit > c.Board.Width {
		return fmt.Errorf("config: initial snake of %d segments does not fit a board %d wide",
			c.Snake.InitialLength, c.Board.Width)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	return nil
}
