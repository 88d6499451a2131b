package placement

import (
	"image"
	"math"
	"math/rand"

	"github.com/stickerframe/stickerframe/internal/config"
)

// uniform spreads a fixed number of random candidates over each active
// side so no side ends up denser than another
type uniform struct {
	zoneChecker
}

func (a *uniform) Positions(rng *rand.Rand) []image.Point {
	w, h := a.cfg.TemplateWidth, a.cfg.TemplateHeight
	border := a.cfg.BorderWidth
	ov := a.zone.Overlap

	var positions []image.Point

	if a.hasSide(sideTop) {
		for i := 0; i < UniformPositionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, w+ov),
				randInt(rng, -ov, border/2),
			))
		}
	}

	if a.hasSide(sideBottom) {
		for i := 0; i < UniformPositionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, w+ov),
				randInt(rng, h-border/2-ov, h+ov),
			))
		}
	}

	if a.hasSide(sideLeft) {
		for i := 0; i < UniformPositionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, border/2),
				randInt(rng, border, h-border),
			))
		}
	}

	if a.hasSide(sideRight) {
		for i := 0; i < UniformPositionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(rng, w-border/2-ov, w+ov),
				randInt(rng, border, h-border),
			))
		}
	}

	if a.hasSide(sideCorners) {
		cornerSize := border + ov
		for i := 0; i < UniformPositionsPerSide/4; i++ {
			positions = append(positions,
				image.Pt(randInt(rng, -ov, cornerSize), randInt(rng, -ov, cornerSize)),
				image.Pt(randInt(rng, w-cornerSize-ov, w+ov), randInt(rng, -ov, cornerSize)),
				image.Pt(randInt(rng, -ov, cornerSize), randInt(rng, h-cornerSize-ov, h+ov)),
				image.Pt(randInt(rng, w-cornerSize-ov, w+ov), randInt(rng, h-cornerSize-ov, h+ov)),
			)
		}
	}

	return positions
}

// DensityFactor thins placement towards the canvas center when gradient
// density is enabled: linear falls off with distance from the center,
// radial is random within the same band.
func (a *uniform) DensityFactor(rng *rand.Rand, p image.Point) float64 {
	if !a.cfg.GradientDensity {
		return 1.0
	}

	if a.cfg.GradientType == config.GradientLinear {
		cx := float64(a.cfg.TemplateWidth) / 2
		cy := float64(a.cfg.TemplateHeight) / 2
		distance := math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
		maxDistance := math.Hypot(cx, cy)
		return clamp(distance/maxDistance, 0.3, 1.0)
	}
	return randFloat(rng, 0.3, 1.0)
}
