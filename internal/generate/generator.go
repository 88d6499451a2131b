package generate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/stickerframe/stickerframe/internal/config"
	"github.com/stickerframe/stickerframe/internal/placement"
)

// Composition limits
const (
	// MaxAttempts bounds the placement loop regardless of density
	MaxAttempts = 500

	// PositionSampleSize is how many candidate positions are tried per sticker
	PositionSampleSize = 20
)

// Progress reports composition state to an observer
type Progress struct {
	Placed    int
	Attempted int
}

// Generator composes one frame from a sticker set and a configuration.
// The same config, stickers, and seed produce the same frame.
type Generator struct {
	cfg        config.Frame
	stickers   []image.Image
	alg        placement.Algorithm
	rng        *rand.Rand
	onProgress func(Progress)
}

// NewGenerator creates a generator for the given stickers and seed
func NewGenerator(cfg config.Frame, stickers []image.Image, seed int64) *Generator {
	cfg.Validate()
	return &Generator{
		cfg:      cfg,
		stickers: stickers,
		alg:      placement.New(cfg),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SetProgressCallback sets the observer for placement progress
func (g *Generator) SetProgressCallback(fn func(Progress)) {
	g.onProgress = fn
}

// Compose renders the frame. It honors ctx cancellation between
// placements and returns the canvas scaled to the configured output size.
func (g *Generator) Compose(ctx context.Context) (*image.NRGBA, error) {
	if len(g.stickers) == 0 {
		return nil, fmt.Errorf("no stickers to place")
	}

	positions := g.alg.Positions(g.rng)
	canvas := imaging.New(g.cfg.TemplateWidth, g.cfg.TemplateHeight, g.cfg.Background.Color())

	// Half the candidate positions is the target fill, as a frame packed
	// onto every candidate looks solid rather than decorated.
	target := len(positions) / 2

	var placed []image.Rectangle
	attempts := 0

	for attempts < MaxAttempts && len(placed) < target {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++

		transformed, opacity := g.randomSticker()

		found := false
		for _, idx := range g.rng.Perm(len(positions))[:minInt(PositionSampleSize, len(positions))] {
			pos := positions[idx]

			density := g.cfg.StickerDensity * g.alg.DensityFactor(g.rng, pos)
			if g.rng.Float64() > density {
				continue
			}

			bounds := transformed.Bounds()
			rect := image.Rect(pos.X, pos.Y, pos.X+bounds.Dx(), pos.Y+bounds.Dy())
			if !g.alg.IsValid(rect, placed) {
				continue
			}

			canvas = imaging.Overlay(canvas, transformed, pos, opacity)
			placed = append(placed, rect)
			found = true
			break
		}

		if g.onProgress != nil {
			g.onProgress(Progress{Placed: len(placed), Attempted: attempts})
		}

		// No candidate accepted this sticker: the border is saturated
		if !found {
			break
		}
	}

	if g.cfg.OutputWidth != g.cfg.TemplateWidth || g.cfg.OutputHeight != g.cfg.TemplateHeight {
		canvas = imaging.Resize(canvas, g.cfg.OutputWidth, g.cfg.OutputHeight, imaging.Lanczos)
	}

	return canvas, nil
}

// randomSticker picks a sticker and applies the per-sticker transforms:
// aspect-preserving scale to a random size, optional rotation, and the
// opacity the caller passes to the compositor.
func (g *Generator) randomSticker() (*image.NRGBA, float64) {
	src := g.stickers[g.rng.Intn(len(g.stickers))]
	size := randInt(g.rng, g.cfg.MinStickerSize, g.cfg.MaxStickerSize)

	bounds := src.Bounds()
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())

	var width, height int
	if g.rng.Intn(2) == 0 {
		width = size
		height = maxInt(1, int(float64(width)/aspect))
	} else {
		height = size
		width = maxInt(1, int(float64(height)*aspect))
	}

	transformed := imaging.Resize(src, width, height, imaging.Lanczos)

	if g.cfg.RandomRotation {
		rotation := g.rng.Float64()*360 - 180
		transformed = imaging.Rotate(transformed, rotation, color.NRGBA{})
	}

	opacity := 1.0
	if g.cfg.RandomOpacity {
		opacity = g.cfg.MinOpacity + g.rng.Float64()*(g.cfg.MaxOpacity-g.cfg.MinOpacity)
	}

	return transformed, opacity
}

func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
