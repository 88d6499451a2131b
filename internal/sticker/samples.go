package sticker

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// sampleShape describes one procedurally drawn sticker
type sampleShape struct {
	name string
	size int
	r    int
	g    int
	b    int
}

var sampleShapes = []sampleShape{
	{"circle", 220, 255, 0, 0},
	{"square", 180, 0, 255, 0},
	{"triangle", 240, 0, 0, 255},
	{"star", 260, 255, 255, 0},
	{"heart", 200, 255, 0, 255},
	{"hexagon", 160, 0, 255, 255},
}

const (
	sampleMargin = 20
	sampleAlpha  = 200
)

// WriteSampleSet draws a small set of colored shape stickers into dir so
// the app is usable before the user has any stickers of their own.
// Returns the written file paths.
func WriteSampleSet(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sample directory %s: %w", dir, err)
	}

	var written []string
	for i, shape := range sampleShapes {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", shape.name, i))
		if err := drawSample(path, shape); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func drawSample(path string, shape sampleShape) error {
	size := shape.size
	dc := gg.NewContext(size, size)
	dc.SetRGBA255(shape.r, shape.g, shape.b, sampleAlpha)

	s := float64(size)
	m := float64(sampleMargin)
	center := s / 2

	switch shape.name {
	case "circle":
		dc.DrawCircle(center, center, center-m)
		dc.Fill()
	case "square":
		dc.DrawRectangle(m, m, s-2*m, s-2*m)
		dc.Fill()
	case "triangle":
		dc.MoveTo(center, m)
		dc.LineTo(m, s-m)
		dc.LineTo(s-m, s-m)
		dc.ClosePath()
		dc.Fill()
	case "star":
		outer := (s - 2*m) / 2
		inner := outer / 2
		for j := 0; j < 5; j++ {
			angle := math.Pi/2 + float64(j)*2*math.Pi/5
			if j == 0 {
				dc.MoveTo(center+outer*math.Cos(angle), center+outer*math.Sin(angle))
			} else {
				dc.LineTo(center+outer*math.Cos(angle), center+outer*math.Sin(angle))
			}
			angle += math.Pi / 5
			dc.LineTo(center+inner*math.Cos(angle), center+inner*math.Sin(angle))
		}
		dc.ClosePath()
		dc.Fill()
	case "heart":
		dc.DrawCircle(center-(center-m)/2, center-(center-m)/2, (center-m)/2)
		dc.DrawCircle(center+(center-m)/2, center-(center-m)/2, (center-m)/2)
		dc.Fill()
		dc.MoveTo(m, s/2.5)
		dc.LineTo(s-m, s/2.5)
		dc.LineTo(center, s-m)
		dc.ClosePath()
		dc.Fill()
	case "hexagon":
		radius := (s - 2*m) / 2
		for j := 0; j < 6; j++ {
			angle := float64(j) * 2 * math.Pi / 6
			if j == 0 {
				dc.MoveTo(center+radius*math.Cos(angle), center+radius*math.Sin(angle))
			} else {
				dc.LineTo(center+radius*math.Cos(angle), center+radius*math.Sin(angle))
			}
		}
		dc.ClosePath()
		dc.Fill()
	default:
		return fmt.Errorf("unknown sample shape %q", shape.name)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save sample sticker %s: %w", path, err)
	}
	return nil
}
