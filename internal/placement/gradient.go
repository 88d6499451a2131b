package placement

import (
	"image"
	"math"
	"math/rand"

	"github.com/stickerframe/stickerframe/internal/config"
)

// gradient concentrates candidates towards the middle of each active
// side, with the candidate band narrowing towards the side's ends
type gradient struct {
	zoneChecker
}

func (a *gradient) Positions(rng *rand.Rand) []image.Point {
	w, h := a.cfg.TemplateWidth, a.cfg.TemplateHeight
	border := a.cfg.BorderWidth
	ov := a.zone.Overlap

	if len(a.sides) == 0 {
		return nil
	}

	var positions []image.Point
	for i := 0; i < GradientTotalPositions; i++ {
		switch a.sides[rng.Intn(len(a.sides))] {
		case sideTop:
			x := randInt(rng, -ov, w+ov)
			centerFactor := math.Abs(float64(x)-float64(w)/2) / (float64(w) / 2)
			yRange := int(float64(border/2) * (1 - centerFactor*0.5))
			positions = append(positions, image.Pt(x, randInt(rng, -ov, maxInt(1, yRange))))

		case sideBottom:
			x := randInt(rng, -ov, w+ov)
			centerFactor := math.Abs(float64(x)-float64(w)/2) / (float64(w) / 2)
			yRange := int(float64(border/2) * (1 - centerFactor*0.5))
			positions = append(positions, image.Pt(x, h-randInt(rng, 1, maxInt(1, yRange+ov))))

		case sideLeft:
			y := randInt(rng, border, h-border)
			centerFactor := math.Abs(float64(y)-float64(h)/2) / (float64(h) / 2)
			xRange := int(float64(border/2) * (1 - centerFactor*0.5))
			positions = append(positions, image.Pt(randInt(rng, -ov, maxInt(1, xRange)), y))

		case sideRight:
			y := randInt(rng, border, h-border)
			centerFactor := math.Abs(float64(y)-float64(h)/2) / (float64(h) / 2)
			xRange := int(float64(border/2) * (1 - centerFactor*0.5))
			positions = append(positions, image.Pt(w-randInt(rng, 1, maxInt(1, xRange+ov)), y))

		case sideCorners:
			cornerSize := border + ov
			distance := rng.Float64()
			xOff := int(float64(cornerSize) * distance)
			yOff := int(float64(cornerSize) * distance)
			positions = append(positions, cornerPoint(rng, w, h, xOff, yOff))
		}
	}

	return positions
}

// DensityFactor falls off strongly from the canvas center. The radial
// variant adds random variation on top of the averaged axis distances.
func (a *gradient) DensityFactor(rng *rand.Rand, p image.Point) float64 {
	if !a.cfg.GradientDensity {
		return 1.0
	}

	distanceX := math.Abs(float64(p.X)-float64(a.cfg.TemplateWidth)/2) / (float64(a.cfg.TemplateWidth) / 2)
	distanceY := math.Abs(float64(p.Y)-float64(a.cfg.TemplateHeight)/2) / (float64(a.cfg.TemplateHeight) / 2)

	if a.cfg.GradientType == config.GradientLinear {
		return clamp(math.Hypot(distanceX, distanceY), 0.1, 1.0)
	}

	base := (distanceX + distanceY) / 2
	variation := randFloat(rng, -0.2, 0.2)
	return clamp(base+variation, 0.1, 1.0)
}

// cornerPoint places an offset into one of the four corners at random
func cornerPoint(rng *rand.Rand, w, h, xOff, yOff int) image.Point {
	switch rng.Intn(4) {
	case 0:
		return image.Pt(-xOff, -yOff) // top-left
	case 1:
		return image.Pt(w+xOff, -yOff) // top-right
	case 2:
		return image.Pt(-xOff, h+yOff) // bottom-left
	default:
		return image.Pt(w+xOff, h+yOff) // bottom-right
	}
}
