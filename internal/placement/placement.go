package placement

import (
	"image"
	"math/rand"

	"github.com/stickerframe/stickerframe/internal/config"
)

// Candidate counts used by the non-scanning algorithms
const (
	UniformPositionsPerSide = 50
	GradientTotalPositions  = 300
	CornerTotalPositions    = 200
	CornerShare             = 0.7  // fraction of corner-algorithm candidates pulled into corners
	SideCandidateChance     = 0.25 // per-side probability for sparse side candidates
)

// side identifies one region of the canvas border
type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
	sideCorners
)

// Algorithm produces candidate anchor positions for stickers around the
// canvas border and validates concrete placements against the zone.
type Algorithm interface {
	// Positions generates candidate top-left anchors. The same rng with
	// the same seed yields the same candidates.
	Positions(rng *rand.Rand) []image.Point

	// DensityFactor scales the configured sticker density at a position,
	// in (0, 1]. Always 1 unless gradient density is enabled.
	DensityFactor(rng *rand.Rand, p image.Point) float64

	// IsValid reports whether a sticker covering r may be placed given
	// the already placed rectangles.
	IsValid(r image.Rectangle, placed []image.Rectangle) bool

	// Zone returns the computed placement zone.
	Zone() Zone
}

// Zone describes where stickers may go: the canvas, and the inner photo
// window that must stay clear.
type Zone struct {
	Canvas  image.Rectangle
	Inner   image.Rectangle
	Border  int
	Overlap int
}

// New returns the placement algorithm selected by the config
func New(cfg config.Frame) Algorithm {
	base := newZoneChecker(cfg)
	switch cfg.Algorithm {
	case config.AlgorithmUniform:
		return &uniform{zoneChecker: base}
	case config.AlgorithmGradient:
		return &gradient{zoneChecker: base}
	case config.AlgorithmCorner:
		return &corner{zoneChecker: base}
	default:
		return &randomScan{zoneChecker: base}
	}
}

// zoneChecker carries the shared zone math and validity rules all four
// algorithms use
type zoneChecker struct {
	cfg   config.Frame
	zone  Zone
	sides []side
}

func newZoneChecker(cfg config.Frame) zoneChecker {
	return zoneChecker{
		cfg:   cfg,
		zone:  computeZone(cfg),
		sides: activeSides(cfg.Sides),
	}
}

// computeZone derives the inner photo window from the border width. A
// border too wide for the template shrinks until a window remains.
func computeZone(cfg config.Frame) Zone {
	w, h := cfg.TemplateWidth, cfg.TemplateHeight
	border := cfg.BorderWidth

	innerW := w - 2*border
	innerH := h - 2*border
	if innerW <= 0 || innerH <= 0 {
		innerW = maxInt(10, w-20)
		innerH = maxInt(10, h-20)
		border = minInt(w-innerW, h-innerH) / 2
	}

	return Zone{
		Canvas:  image.Rect(0, 0, w, h),
		Inner:   image.Rect(border, border, border+innerW, border+innerH),
		Border:  border,
		Overlap: cfg.BorderOverlap,
	}
}

func activeSides(s config.BorderSides) []side {
	switch s {
	case config.SidesTop:
		return []side{sideTop}
	case config.SidesBottom:
		return []side{sideBottom}
	case config.SidesLeft:
		return []side{sideLeft}
	case config.SidesRight:
		return []side{sideRight}
	case config.SidesTopBottom:
		return []side{sideTop, sideBottom}
	case config.SidesLeftRight:
		return []side{sideLeft, sideRight}
	case config.SidesCorners:
		return []side{sideCorners}
	default:
		return []side{sideTop, sideBottom, sideLeft, sideRight}
	}
}

func (z *zoneChecker) Zone() Zone {
	return z.zone
}

func (z *zoneChecker) hasSide(s side) bool {
	for _, active := range z.sides {
		if active == s {
			return true
		}
	}
	return false
}

// IsValid applies the placement rules: the sticker may bleed past the
// canvas edge by at most the configured overlap, must not sit entirely
// inside the inner window, and must not touch placed stickers when
// overlap between stickers is disabled.
func (z *zoneChecker) IsValid(r image.Rectangle, placed []image.Rectangle) bool {
	ov := z.zone.Overlap
	canvas := z.zone.Canvas

	if r.Max.X < -ov || r.Min.X > canvas.Max.X+ov {
		return false
	}
	if r.Max.Y < -ov || r.Min.Y > canvas.Max.Y+ov {
		return false
	}

	if r.Overlaps(z.zone.Inner) && r.In(z.zone.Inner) {
		return false
	}

	if !z.cfg.OverlapAllowed {
		for _, p := range placed {
			if r.Overlaps(p) {
				return false
			}
		}
	}

	return true
}

// DensityFactor is 1 for algorithms without their own density model
func (z *zoneChecker) DensityFactor(_ *rand.Rand, _ image.Point) float64 {
	return 1.0
}

// randInt returns a uniform value in [lo, hi]. Degenerate ranges
// collapse to lo instead of failing; they occur when the border nearly
// consumes the template.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
