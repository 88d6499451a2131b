package placement

import (
	"image"
	"math/rand"
)

// randomScan walks each active side with a fixed step and jitters the
// cross-axis coordinate, the simplest of the four strategies
type randomScan struct {
	zoneChecker
}

func (a *randomScan) Positions(rng *rand.Rand) []image.Point {
	w, h := a.cfg.TemplateWidth, a.cfg.TemplateHeight
	border := a.cfg.BorderWidth
	ov := a.zone.Overlap
	step := maxInt(5, border/10)

	var positions []image.Point

	if a.hasSide(sideTop) {
		for x := -ov; x < w+ov; x += step {
			positions = append(positions, image.Pt(x, randInt(rng, -ov, border/2)))
		}
	}

	if a.hasSide(sideBottom) {
		for x := -ov; x < w+ov; x += step {
			positions = append(positions, image.Pt(x, h-randInt(rng, 1, border/2+ov)))
		}
	}

	if a.hasSide(sideLeft) {
		for y := border; y < h-border; y += step {
			positions = append(positions, image.Pt(randInt(rng, -ov, border/2), y))
		}
	}

	if a.hasSide(sideRight) {
		for y := border; y < h-border; y += step {
			positions = append(positions, image.Pt(w-randInt(rng, 1, border/2+ov), y))
		}
	}

	if a.hasSide(sideCorners) {
		cornerSize := border + ov
		for x := -ov; x < cornerSize; x += step {
			for y := -ov; y < cornerSize; y += step {
				positions = append(positions,
					image.Pt(x, y),         // top-left
					image.Pt(w-x-1, y),     // top-right
					image.Pt(x, h-y-1),     // bottom-left
					image.Pt(w-x-1, h-y-1), // bottom-right
				)
			}
		}
	}

	return positions
}
