package config

import "image/color"

// Algorithm selects the sticker placement strategy
type Algorithm string

const (
	AlgorithmRandom   Algorithm = "random"
	AlgorithmUniform  Algorithm = "uniform"
	AlgorithmGradient Algorithm = "gradient"
	AlgorithmCorner   Algorithm = "corner"
)

// BorderSides selects which canvas sides receive stickers
type BorderSides string

const (
	SidesAll       BorderSides = "all"
	SidesTop       BorderSides = "top"
	SidesBottom    BorderSides = "bottom"
	SidesLeft      BorderSides = "left"
	SidesRight     BorderSides = "right"
	SidesTopBottom BorderSides = "top_bottom"
	SidesLeftRight BorderSides = "left_right"
	SidesCorners   BorderSides = "corners"
)

// GradientType selects how gradient density falls off
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// Format is the output image encoding
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
	FormatWEBP Format = "WEBP"
)

// Extension returns the filename extension for the format
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatWEBP:
		return "webp"
	default:
		return "png"
	}
}

// RGBA is a plain color value that serializes cleanly to YAML presets
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color converts the value to a color.NRGBA usable with the image packages
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Size limits enforced by Validate, matching the ranges the settings UI offers
const (
	MinTemplateDimension = 100
	MaxTemplateDimension = 5000
	MaxOutputDimension   = 8000
	MinStickerSize       = 10
	MaxStickerSize       = 1000
	MinBorderWidth       = 10
	MaxBorderWidth       = 500
	MaxBorderOverlap     = 200
)

// Frame holds every knob of a single frame generation
type Frame struct {
	TemplateWidth  int `yaml:"template_width"`
	TemplateHeight int `yaml:"template_height"`
	OutputWidth    int `yaml:"output_width"`
	OutputHeight   int `yaml:"output_height"`

	StickerDir      string       `yaml:"sticker_dir,omitempty"`
	StickerDensity  float64      `yaml:"sticker_density"`
	MinStickerSize  int          `yaml:"min_sticker_size"`
	MaxStickerSize  int          `yaml:"max_sticker_size"`
	BorderWidth     int          `yaml:"border_width"`
	BorderOverlap   int          `yaml:"border_overlap"` // how far stickers may bleed past the canvas edge
	OverlapAllowed  bool         `yaml:"overlap_allowed"`
	RandomRotation  bool         `yaml:"random_rotation"`
	RandomOpacity   bool         `yaml:"random_opacity"`
	MinOpacity      float64      `yaml:"min_opacity"`
	MaxOpacity      float64      `yaml:"max_opacity"`
	Background      RGBA         `yaml:"background"`
	OutputFormat    Format       `yaml:"output_format"`
	Sides           BorderSides  `yaml:"sides"`
	GradientDensity bool         `yaml:"gradient_density"`
	GradientType    GradientType `yaml:"gradient_type"`
	Algorithm       Algorithm    `yaml:"algorithm"`

	AutoPreview       bool `yaml:"auto_preview"`
	PreviewKeepAspect bool `yaml:"preview_keep_aspect"`
}

// DefaultFrame returns the configuration the app starts with
func DefaultFrame() Frame {
	return Frame{
		TemplateWidth:     1200,
		TemplateHeight:    800,
		OutputWidth:       1920,
		OutputHeight:      1080,
		StickerDensity:    0.6,
		MinStickerSize:    40,
		MaxStickerSize:    150,
		BorderWidth:       100,
		BorderOverlap:     20,
		OverlapAllowed:    true,
		RandomRotation:    true,
		RandomOpacity:     false,
		MinOpacity:        0.7,
		MaxOpacity:        1.0,
		Background:        RGBA{0, 0, 0, 0},
		OutputFormat:      FormatPNG,
		Sides:             SidesAll,
		GradientDensity:   false,
		GradientType:      GradientLinear,
		Algorithm:         AlgorithmRandom,
		AutoPreview:       true,
		PreviewKeepAspect: true,
	}
}

// Validate repairs out-of-range values in place. It never rejects a
// config: the GUI, presets, and CLI flags all funnel through here, and
// a degenerate value should degrade to the nearest sane one.
func (f *Frame) Validate() {
	f.TemplateWidth = clampInt(f.TemplateWidth, MinTemplateDimension, MaxTemplateDimension)
	f.TemplateHeight = clampInt(f.TemplateHeight, MinTemplateDimension, MaxTemplateDimension)
	f.OutputWidth = clampInt(f.OutputWidth, MinTemplateDimension, MaxOutputDimension)
	f.OutputHeight = clampInt(f.OutputHeight, MinTemplateDimension, MaxOutputDimension)

	f.MinStickerSize = clampInt(f.MinStickerSize, MinStickerSize, MaxStickerSize)
	f.MaxStickerSize = clampInt(f.MaxStickerSize, MinStickerSize, MaxStickerSize)
	if f.MaxStickerSize < f.MinStickerSize {
		f.MinStickerSize, f.MaxStickerSize = f.MaxStickerSize, f.MinStickerSize
	}

	f.BorderWidth = clampInt(f.BorderWidth, MinBorderWidth, MaxBorderWidth)
	f.BorderOverlap = clampInt(f.BorderOverlap, 0, MaxBorderOverlap)

	f.StickerDensity = clampFloat(f.StickerDensity, 0.01, 1.0)
	f.MinOpacity = clampFloat(f.MinOpacity, 0.1, 1.0)
	f.MaxOpacity = clampFloat(f.MaxOpacity, 0.1, 1.0)
	if f.MaxOpacity < f.MinOpacity {
		f.MinOpacity, f.MaxOpacity = f.MaxOpacity, f.MinOpacity
	}

	switch f.Algorithm {
	case AlgorithmRandom, AlgorithmUniform, AlgorithmGradient, AlgorithmCorner:
	default:
		f.Algorithm = AlgorithmRandom
	}

	switch f.Sides {
	case SidesAll, SidesTop, SidesBottom, SidesLeft, SidesRight,
		SidesTopBottom, SidesLeftRight, SidesCorners:
	default:
		f.Sides = SidesAll
	}

	switch f.GradientType {
	case GradientLinear, GradientRadial:
	default:
		f.GradientType = GradientLinear
	}

	switch f.OutputFormat {
	case FormatPNG, FormatJPEG, FormatWEBP:
	default:
		f.OutputFormat = FormatPNG
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
