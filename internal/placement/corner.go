package placement

import (
	"image"
	"math"
	"math/rand"

	"github.com/stickerframe/stickerframe/internal/config"
)

// corner pulls most candidates into the four corners with a squared
// falloff and leaves the sides sparsely covered
type corner struct {
	zoneChecker
}

func (a *corner) Positions(rng *rand.Rand) []image.Point {
	w, h := a.cfg.TemplateWidth, a.cfg.TemplateHeight
	border := a.cfg.BorderWidth
	ov := a.zone.Overlap

	cornerPositions := int(CornerTotalPositions * CornerShare)
	sidePositions := CornerTotalPositions - cornerPositions
	cornerSize := border + ov

	var positions []image.Point

	for i := 0; i < cornerPositions; i++ {
		// Squaring the distance clusters offsets near the corner itself
		distance := rng.Float64()
		distance *= distance
		xOff := int(float64(cornerSize) * distance)
		yOff := int(float64(cornerSize) * distance)
		positions = append(positions, cornerPoint(rng, w, h, xOff, yOff))
	}

	for i := 0; i < sidePositions; i++ {
		if a.hasSide(sideTop) && rng.Float64() < SideCandidateChance {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, w+ov),
				randInt(rng, -ov, border/4),
			))
		}
		if a.hasSide(sideBottom) && rng.Float64() < SideCandidateChance {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, w+ov),
				h-randInt(rng, 1, border/4+ov),
			))
		}
		if a.hasSide(sideLeft) && rng.Float64() < SideCandidateChance {
			positions = append(positions, image.Pt(
				randInt(rng, -ov, border/4),
				randInt(rng, border, h-border),
			))
		}
		if a.hasSide(sideRight) && rng.Float64() < SideCandidateChance {
			positions = append(positions, image.Pt(
				w-randInt(rng, 1, border/4+ov),
				randInt(rng, border, h-border),
			))
		}
	}

	return positions
}

// DensityFactor grows towards the nearest corner
func (a *corner) DensityFactor(rng *rand.Rand, p image.Point) float64 {
	if !a.cfg.GradientDensity {
		return 1.0
	}

	w := float64(a.cfg.TemplateWidth)
	h := float64(a.cfg.TemplateHeight)
	x := float64(p.X)
	y := float64(p.Y)

	minDistance := math.Inf(1)
	for _, c := range [4]image.Point{{0, 0}, {int(w), 0}, {0, int(h)}, {int(w), int(h)}} {
		distance := math.Hypot(x-float64(c.X), y-float64(c.Y))
		minDistance = math.Min(minDistance, distance)
	}

	maxCornerDistance := math.Hypot(w/2, h/2)

	if a.cfg.GradientType == config.GradientLinear {
		return clamp(1-minDistance/maxCornerDistance, 0.2, 1.0)
	}

	base := 1 - minDistance/maxCornerDistance
	variation := randFloat(rng, -0.3, 0.3)
	return clamp(base+variation, 0.1, 1.0)
}
