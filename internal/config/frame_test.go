package config

import "testing"

func TestDefaultFrame(t *testing.T) {
	frame := DefaultFrame()

	if frame.TemplateWidth != 1200 || frame.TemplateHeight != 800 {
		t.Errorf("Expected 1200x800 template, got %dx%d", frame.TemplateWidth, frame.TemplateHeight)
	}

	if frame.OutputWidth != 1920 || frame.OutputHeight != 1080 {
		t.Errorf("Expected 1920x1080 output, got %dx%d", frame.OutputWidth, frame.OutputHeight)
	}

	if frame.StickerDensity != 0.6 {
		t.Errorf("Expected density 0.6, got %f", frame.StickerDensity)
	}

	if frame.Algorithm != AlgorithmRandom {
		t.Errorf("Expected random algorithm, got %s", frame.Algorithm)
	}

	if frame.Sides != SidesAll {
		t.Errorf("Expected all sides, got %s", frame.Sides)
	}

	// Defaults must survive validation unchanged
	validated := frame
	validated.Validate()
	if validated != frame {
		t.Errorf("Validate() changed default config: %+v", validated)
	}
}

func TestFrame_ValidateClampsRanges(t *testing.T) {
	frame := DefaultFrame()
	frame.TemplateWidth = 10
	frame.TemplateHeight = 99999
	frame.StickerDensity = 7.5
	frame.BorderWidth = 0
	frame.BorderOverlap = -5
	frame.Validate()

	if frame.TemplateWidth != MinTemplateDimension {
		t.Errorf("Expected template width clamped to %d, got %d", MinTemplateDimension, frame.TemplateWidth)
	}
	if frame.TemplateHeight != MaxTemplateDimension {
		t.Errorf("Expected template height clamped to %d, got %d", MaxTemplateDimension, frame.TemplateHeight)
	}
	if frame.StickerDensity != 1.0 {
		t.Errorf("Expected density clamped to 1.0, got %f", frame.StickerDensity)
	}
	if frame.BorderWidth != MinBorderWidth {
		t.Errorf("Expected border width clamped to %d, got %d", MinBorderWidth, frame.BorderWidth)
	}
	if frame.BorderOverlap != 0 {
		t.Errorf("Expected border overlap clamped to 0, got %d", frame.BorderOverlap)
	}
}

func TestFrame_ValidateSwapsInvertedRanges(t *testing.T) {
	frame := DefaultFrame()
	frame.MinStickerSize = 200
	frame.MaxStickerSize = 50
	frame.MinOpacity = 0.9
	frame.MaxOpacity = 0.4
	frame.Validate()

	if frame.MinStickerSize != 50 || frame.MaxStickerSize != 200 {
		t.Errorf("Expected sticker size range 50..200, got %d..%d", frame.MinStickerSize, frame.MaxStickerSize)
	}
	if frame.MinOpacity != 0.4 || frame.MaxOpacity != 0.9 {
		t.Errorf("Expected opacity range 0.4..0.9, got %f..%f", frame.MinOpacity, frame.MaxOpacity)
	}
}

func TestFrame_ValidateRepairsEnums(t *testing.T) {
	frame := DefaultFrame()
	frame.Algorithm = Algorithm("bogus")
	frame.Sides = BorderSides("nowhere")
	frame.GradientType = GradientType("spiral")
	frame.OutputFormat = Format("BMP")
	frame.Validate()

	if frame.Algorithm != AlgorithmRandom {
		t.Errorf("Expected algorithm reset to random, got %s", frame.Algorithm)
	}
	if frame.Sides != SidesAll {
		t.Errorf("Expected sides reset to all, got %s", frame.Sides)
	}
	if frame.GradientType != GradientLinear {
		t.Errorf("Expected gradient type reset to linear, got %s", frame.GradientType)
	}
	if frame.OutputFormat != FormatPNG {
		t.Errorf("Expected output format reset to PNG, got %s", frame.OutputFormat)
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatPNG, "png"},
		{FormatJPEG, "jpg"},
		{FormatWEBP, "webp"},
		{Format("unknown"), "png"},
	}

	for _, test := range tests {
		if ext := test.format.Extension(); ext != test.expected {
			t.Errorf("Format(%s).Extension() = %s, expected %s", test.format, ext, test.expected)
		}
	}
}
