package generate

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/stickerframe/stickerframe/internal/config"
)

func TestSave_PNG(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(40, 30, color.NRGBA{R: 200, A: 128})

	path := filepath.Join(dir, "frame.png")
	saved, err := Save(img, path, config.FormatPNG, color.NRGBA{})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved != path {
		t.Errorf("expected path %s, got %s", path, saved)
	}

	loaded, err := imaging.Open(saved)
	if err != nil {
		t.Fatalf("saved PNG does not decode: %v", err)
	}
	if loaded.Bounds().Dx() != 40 || loaded.Bounds().Dy() != 30 {
		t.Errorf("unexpected decoded size %v", loaded.Bounds())
	}

	// PNG keeps the alpha channel
	_, _, _, a := loaded.At(0, 0).RGBA()
	if a == 0xffff {
		t.Error("PNG should preserve partial transparency")
	}
}

func TestSave_JPEGFlattensAlpha(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(40, 30, color.NRGBA{R: 200, A: 0}) // fully transparent red

	path := filepath.Join(dir, "frame.jpg")
	saved, err := Save(img, path, config.FormatJPEG, color.NRGBA{R: 255, G: 255, B: 255})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := imaging.Open(saved)
	if err != nil {
		t.Fatalf("saved JPEG does not decode: %v", err)
	}

	// Transparent pixels flatten to the background color, not black
	r, g, b, _ := loaded.At(10, 10).RGBA()
	if r>>8 < 200 || g>>8 < 200 || b>>8 < 200 {
		t.Errorf("expected near-white flattened pixel, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestSave_WEBPFallsBackToPNG(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(20, 20, color.NRGBA{G: 128, A: 255})

	saved, err := Save(img, filepath.Join(dir, "frame.webp"), config.FormatWEBP, color.NRGBA{})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasSuffix(saved, ".png") {
		t.Errorf("expected .png fallback path, got %s", saved)
	}

	if _, err := imaging.Open(saved); err != nil {
		t.Errorf("fallback PNG does not decode: %v", err)
	}
}

func TestOutputFileName(t *testing.T) {
	frame := config.DefaultFrame()
	frame.Algorithm = config.AlgorithmCorner
	frame.OutputFormat = config.FormatJPEG

	name := OutputFileName(frame)
	expected := "sticker_frame_1200x800_corner.jpg"
	if name != expected {
		t.Errorf("OutputFileName() = %s, expected %s", name, expected)
	}
}
