package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaketui/internal/core"
)

// styleCache memoizes lipgloss styles per cell color. Colors come from the
// YAML config, so there are only a handful of distinct values per session.
var styleCache = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startColor).Render(run.String()))
			}
		}
	}
	return sb.String()
}
