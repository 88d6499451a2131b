package generate

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/stickerframe/stickerframe/internal/config"
)

// testStickers returns a few small opaque stickers for composition tests
func testStickers() []image.Image {
	colors := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	stickers := make([]image.Image, 0, len(colors))
	for _, c := range colors {
		stickers = append(stickers, imaging.New(64, 64, c))
	}
	return stickers
}

// smallFrame keeps composition fast in tests
func smallFrame() config.Frame {
	frame := config.DefaultFrame()
	frame.TemplateWidth = 300
	frame.TemplateHeight = 300
	frame.OutputWidth = 300
	frame.OutputHeight = 300
	frame.MinStickerSize = 20
	frame.MaxStickerSize = 40
	frame.BorderWidth = 60
	frame.RandomRotation = false
	return frame
}

func TestCompose_ProducesFrame(t *testing.T) {
	gen := NewGenerator(smallFrame(), testStickers(), 1)

	result, err := gen.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if result.Bounds().Dx() != 300 || result.Bounds().Dy() != 300 {
		t.Errorf("unexpected frame size %v", result.Bounds())
	}

	// At least one sticker must have landed somewhere
	opaque := false
	for i := 3; i < len(result.Pix); i += 4 {
		if result.Pix[i] != 0 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Error("composed frame is fully transparent, no sticker was placed")
	}
}

func TestCompose_DeterministicUnderSeed(t *testing.T) {
	frame := smallFrame()
	stickers := testStickers()

	first, err := NewGenerator(frame, stickers, 42).Compose(context.Background())
	if err != nil {
		t.Fatalf("first Compose failed: %v", err)
	}
	second, err := NewGenerator(frame, stickers, 42).Compose(context.Background())
	if err != nil {
		t.Fatalf("second Compose failed: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("same seed produced different frames")
	}

	third, err := NewGenerator(frame, stickers, 43).Compose(context.Background())
	if err != nil {
		t.Fatalf("third Compose failed: %v", err)
	}
	if bytes.Equal(first.Pix, third.Pix) {
		t.Error("different seeds produced identical frames")
	}
}

func TestCompose_ResizesToOutputSize(t *testing.T) {
	frame := smallFrame()
	frame.OutputWidth = 600
	frame.OutputHeight = 400

	result, err := NewGenerator(frame, testStickers(), 1).Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if result.Bounds().Dx() != 600 || result.Bounds().Dy() != 400 {
		t.Errorf("expected 600x400 output, got %v", result.Bounds())
	}
}

func TestCompose_NoStickers(t *testing.T) {
	gen := NewGenerator(smallFrame(), nil, 1)

	if _, err := gen.Compose(context.Background()); err == nil {
		t.Error("Expected error for empty sticker set, got nil")
	}
}

func TestCompose_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewGenerator(smallFrame(), testStickers(), 1)
	if _, err := gen.Compose(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCompose_ReportsProgress(t *testing.T) {
	gen := NewGenerator(smallFrame(), testStickers(), 5)

	var last Progress
	gen.SetProgressCallback(func(p Progress) {
		if p.Attempted < last.Attempted || p.Placed < last.Placed {
			t.Errorf("progress went backwards: %+v after %+v", p, last)
		}
		last = p
	})

	if _, err := gen.Compose(context.Background()); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if last.Attempted == 0 {
		t.Error("progress callback was never invoked")
	}
}

func TestCompose_RotationAndOpacity(t *testing.T) {
	frame := smallFrame()
	frame.RandomRotation = true
	frame.RandomOpacity = true
	frame.MinOpacity = 0.3
	frame.MaxOpacity = 0.8

	result, err := NewGenerator(frame, testStickers(), 11).Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if result == nil {
		t.Fatal("Compose returned nil frame")
	}
}
