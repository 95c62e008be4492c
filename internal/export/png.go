// Package export renders game frames to PNG images. The board is drawn at
// its native pixel size, one filled-and-stroked rectangle per unit cell.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"snaketui/internal/games/snake"
)

// WriteFrame renders the current game state as a PNG into w.
func WriteFrame(w io.Writer, g *snake.Game) error {
	cfg := g.Config()
	unit := float64(cfg.Board.Unit)

	dc := gg.NewContext(cfg.Board.Width, cfg.Board.Height)

	dc.SetHexColor(cfg.Colors.Board)
	dc.Clear()

	food := g.Food()
	dc.SetHexColor(cfg.Colors.Food)
	dc.DrawRectangle(float64(food.X), float64(food.Y), unit, unit)
	dc.Fill()

	dc.SetLineWidth(2)
	for _, seg := range g.Segments() {
		dc.DrawRectangle(float64(seg.X), float64(seg.Y), unit, unit)
		dc.SetHexColor(cfg.Colors.SnakeFill)
		dc.FillPreserve()
		dc.SetHexColor(cfg.Colors.SnakeBorder)
		dc.Stroke()
	}

	if !g.Running() {
		dc.SetHexColor(cfg.Colors.GameOver)
		dc.DrawStringAnchored("GAME OVER", float64(cfg.Board.Width)/2, float64(cfg.Board.Height)/2, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: cannot encode frame: %w", err)
	}
	return nil
}

// SaveFrame writes the current frame to a PNG file, creating parent
// directories as needed.
func SaveFrame(path string, g *snake.Game) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: cannot create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	defer f.Close()

	return WriteFrame(f, g)
}
