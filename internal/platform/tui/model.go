package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"snaketui/internal/core"
	"snaketui/internal/export"
	"snaketui/internal/games/snake"
	"snaketui/internal/storage"
)

// GameModel is the Bubble Tea model for a single game session.
// It owns the tick schedule: a tick command is in flight exactly while
// `ticking` is true, so pausing or a game over stops the schedule and
// restart/unpause re-arm it.
type GameModel struct {
	game   *snake.Game
	screen *core.Screen
	store  *storage.Store
	keymap *KeyMapper
	config core.RuntimeConfig
	player string

	paused     bool
	ticking    bool
	quitting   bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
// player tags saved scores; use "local" for non-SSH sessions.
func NewGameModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg.Seed)

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			game.SetHighScore(best)
		}
	}

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		keymap:  NewKeyMapper(),
		config:  cfg,
		player:  player,
		ticking: true, // Init always starts the tick chain
	}
}

// Init starts the tick schedule.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction changes apply to the game
// immediately; the latest valid one before the next tick wins.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keymap.MapKey(msg); {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action.IsDirection():
		if m.game.Running() && !m.paused {
			m.game.SetDirection(directionFor(action))
		}
		return m, nil

	case action == core.ActionPause:
		if !m.game.Running() {
			return m, nil
		}
		m.paused = !m.paused
		if !m.paused && !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickInterval)
		}
		return m, nil

	case action == core.ActionRestart:
		return m.restart()
	}

	return m, nil
}

// handleTick runs one simulation step and re-arms the schedule while the
// game keeps running.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || !m.game.Running() {
		m.ticking = false
		return m, nil
	}

	m.game.Tick()

	if !m.game.Running() {
		m.saveScore()
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.config.TickInterval)
}

// restart reinitializes the game with a fresh seed and re-arms the schedule
// if it had stopped.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config.Seed)
	m.scoreSaved = false
	m.paused = false

	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.game.SetHighScore(best)
		}
	}

	if !m.ticking {
		m.ticking = true
		return m, tickCmd(m.config.TickInterval)
	}
	return m, nil
}

// saveScore persists the final score once per run. Best effort: the game
// continues whether or not the write succeeds.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.game.Score() == 0 {
		return
	}
	m.scoreSaved = true
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.player, m.game.Score())
	}
}

// saveScreenshot exports the current frame as a PNG under ~/.snaketui.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	name := fmt.Sprintf("snake_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(home, ".snaketui", "screenshots", name)
	//nolint:errcheck // Best-effort save
	export.SaveFrame(path, m.game)
}

func directionFor(a core.Action) snake.Direction {
	switch a {
	case core.ActionUp:
		return snake.DirUp
	case core.ActionDown:
		return snake.DirDown
	case core.ActionLeft:
		return snake.DirLeft
	default:
		return snake.DirRight
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED - press P to resume", core.ColorDefault)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game session.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
