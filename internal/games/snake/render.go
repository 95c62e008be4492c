package snake

import (
	"fmt"

	"snaketui/internal/core"
)

const hudHeight = 2 // HUD text plus separator line

// Render draws the current frame into the screen buffer: HUD, board box,
// food, segments, and the game-over overlay when the run has ended.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	cols := g.cfg.Board.Cols()
	rows := g.cfg.Board.Rows()

	// Board box is the grid plus a one-cell border on each side.
	boxW := cols + 2
	boxH := rows + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorDefault)
		return
	}

	box := core.NewRect((dst.Width()-boxW)/2, hudHeight, boxW, boxH)
	dst.StrokeRect(box, core.Color(g.cfg.Colors.Board))

	// Interior origin for unit-grid cells
	originX := box.X + 1
	originY := box.Y + 1
	u := g.cfg.Board.Unit

	dst.SetCell(originX+g.food.X/u, originY+g.food.Y/u, '●', core.Color(g.cfg.Colors.Food))

	for i, seg := range g.segments {
		// Head gets the border accent color so it reads at a glance.
		color := core.Color(g.cfg.Colors.SnakeFill)
		r := '■'
		if i == 0 {
			color = core.Color(g.cfg.Colors.SnakeBorder)
			r = '█'
		}
		dst.SetCell(originX+seg.X/u, originY+seg.Y/u, r, color)
	}

	if !g.running {
		g.renderOverlay(dst, "GAME OVER", "Press R to restart")
	}
}

// renderHUD draws the score line and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d", g.score)
	if g.best > 0 {
		hud += fmt.Sprintf("  Best: %d", g.best)
	}
	dst.DrawText(0, 0, hud, core.ColorDefault)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

// renderOverlay draws a centered two-line message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.StrokeRect(box, core.Color(g.cfg.Colors.GameOver))
	dst.DrawTextCentered(box.Y+1, line1, core.Color(g.cfg.Colors.GameOver))
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
