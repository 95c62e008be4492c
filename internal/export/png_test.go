package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"snaketui/internal/config"
	"snaketui/internal/games/snake"
)

func TestWriteFrame(t *testing.T) {
	g := snake.New(config.Default())
	g.Reset(42)

	var buf bytes.Buffer
	if err := WriteFrame(&buf, g); err != nil {
		t.Fatalf("WriteFrame() failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 500 || bounds.Dy() != 500 {
		t.Errorf("Frame size = %dx%d, expected 500x500", bounds.Dx(), bounds.Dy())
	}
}

func TestSaveFrame(t *testing.T) {
	g := snake.New(config.Default())
	g.Reset(42)

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := SaveFrame(path, g); err != nil {
		t.Fatalf("SaveFrame() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cannot read saved frame: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Saved frame is not a valid PNG: %v", err)
	}
}
