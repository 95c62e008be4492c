// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and the tick schedule.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends one tick message after the given
// delay. The model re-arms it after each tick while the game is running, so
// ticks never overlap: each one runs to completion before the next is
// scheduled.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
