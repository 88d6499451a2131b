package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yml")

	frame := DefaultFrame()
	frame.Algorithm = AlgorithmCorner
	frame.Sides = SidesCorners
	frame.StickerDensity = 0.35
	frame.Background = RGBA{R: 255, G: 255, B: 255, A: 255}
	frame.OutputFormat = FormatJPEG

	if err := SavePreset(path, frame); err != nil {
		t.Fatalf("SavePreset failed: %v", err)
	}

	loaded, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}

	if loaded != frame {
		t.Errorf("Preset round trip mismatch:\n got %+v\nwant %+v", loaded, frame)
	}
}

func TestLoadPreset_MissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Error("Expected error for missing preset file, got nil")
	}
}

func TestLoadPreset_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	content := "algorithm: gradient\nsticker_density: 0.25\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}

	frame, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}

	if frame.Algorithm != AlgorithmGradient {
		t.Errorf("Expected gradient algorithm, got %s", frame.Algorithm)
	}
	if frame.StickerDensity != 0.25 {
		t.Errorf("Expected density 0.25, got %f", frame.StickerDensity)
	}
	// Unset fields fall back to defaults
	if frame.TemplateWidth != 1200 {
		t.Errorf("Expected default template width 1200, got %d", frame.TemplateWidth)
	}
}

func TestLoadPreset_InvalidValuesAreRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	content := "algorithm: teleport\nsticker_density: 42\nborder_width: 9000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}

	frame, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}

	if frame.Algorithm != AlgorithmRandom {
		t.Errorf("Expected repaired algorithm, got %s", frame.Algorithm)
	}
	if frame.StickerDensity != 1.0 {
		t.Errorf("Expected clamped density, got %f", frame.StickerDensity)
	}
	if frame.BorderWidth != MaxBorderWidth {
		t.Errorf("Expected clamped border width, got %d", frame.BorderWidth)
	}
}
