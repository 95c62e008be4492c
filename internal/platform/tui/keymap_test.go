package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"snaketui/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"wasd up", runeKey('w'), core.ActionUp},
		{"wasd down", runeKey('s'), core.ActionDown},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"vim right", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit q", runeKey('q'), core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "snake", core.Color("#96dc8c"))
	s.Set(0, 2, '#')

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "snake") {
		t.Errorf("First line %q does not contain drawn text", lines[0])
	}
	if !strings.Contains(lines[2], "#") {
		t.Errorf("Third line %q does not contain drawn rune", lines[2])
	}
}
