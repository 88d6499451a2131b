package placement

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stickerframe/stickerframe/internal/config"
)

func TestDensityFactor_OneWhenGradientDisabled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range []config.Algorithm{
		config.AlgorithmRandom,
		config.AlgorithmUniform,
		config.AlgorithmGradient,
		config.AlgorithmCorner,
	} {
		frame := testFrame()
		frame.Algorithm = name
		frame.GradientDensity = false
		alg := New(frame)

		if f := alg.DensityFactor(rng, image.Pt(0, 0)); f != 1.0 {
			t.Errorf("algorithm %s: expected density factor 1.0 with gradient off, got %f", name, f)
		}
	}
}

func TestDensityFactor_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	points := []image.Point{
		{0, 0},
		{600, 400}, // canvas center
		{1200, 800},
		{-20, -20},
		{600, 0},
	}

	cases := []struct {
		algorithm config.Algorithm
		gradient  config.GradientType
		lo, hi    float64
	}{
		{config.AlgorithmUniform, config.GradientLinear, 0.3, 1.0},
		{config.AlgorithmUniform, config.GradientRadial, 0.3, 1.0},
		{config.AlgorithmGradient, config.GradientLinear, 0.1, 1.0},
		{config.AlgorithmGradient, config.GradientRadial, 0.1, 1.0},
		{config.AlgorithmCorner, config.GradientLinear, 0.2, 1.0},
		{config.AlgorithmCorner, config.GradientRadial, 0.1, 1.0},
	}

	for _, c := range cases {
		frame := testFrame()
		frame.Algorithm = c.algorithm
		frame.GradientDensity = true
		frame.GradientType = c.gradient
		alg := New(frame)

		for _, p := range points {
			f := alg.DensityFactor(rng, p)
			if f < c.lo || f > c.hi {
				t.Errorf("%s/%s: density factor %f at %v outside [%f, %f]",
					c.algorithm, c.gradient, f, p, c.lo, c.hi)
			}
		}
	}
}

func TestDensityFactor_CornerPrefersCorners(t *testing.T) {
	frame := testFrame()
	frame.Algorithm = config.AlgorithmCorner
	frame.GradientDensity = true
	frame.GradientType = config.GradientLinear
	alg := New(frame)

	rng := rand.New(rand.NewSource(2))
	atCorner := alg.DensityFactor(rng, image.Pt(0, 0))
	atCenter := alg.DensityFactor(rng, image.Pt(600, 400))

	if atCorner <= atCenter {
		t.Errorf("corner density (%f) should exceed center density (%f)", atCorner, atCenter)
	}
}

func TestDensityFactor_GradientPrefersEdges(t *testing.T) {
	frame := testFrame()
	frame.Algorithm = config.AlgorithmGradient
	frame.GradientDensity = true
	frame.GradientType = config.GradientLinear
	alg := New(frame)

	rng := rand.New(rand.NewSource(2))
	atEdge := alg.DensityFactor(rng, image.Pt(0, 0))
	atCenter := alg.DensityFactor(rng, image.Pt(600, 400))

	if atEdge <= atCenter {
		t.Errorf("edge density (%f) should exceed center density (%f)", atEdge, atCenter)
	}
}
