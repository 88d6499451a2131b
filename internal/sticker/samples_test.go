package sticker

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestWriteSampleSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")

	written, err := WriteSampleSet(dir)
	if err != nil {
		t.Fatalf("WriteSampleSet failed: %v", err)
	}

	if len(written) != len(sampleShapes) {
		t.Fatalf("expected %d sample stickers, got %d", len(sampleShapes), len(written))
	}

	// Every sample decodes and has a transparent margin
	for _, path := range written {
		img, err := imaging.Open(path)
		if err != nil {
			t.Errorf("sample %s does not decode: %v", filepath.Base(path), err)
			continue
		}

		bounds := img.Bounds()
		if bounds.Dx() < 100 || bounds.Dy() < 100 {
			t.Errorf("sample %s is too small: %v", filepath.Base(path), bounds)
		}

		_, _, _, a := img.At(1, 1).RGBA()
		if a != 0 {
			t.Errorf("sample %s corner should be transparent", filepath.Base(path))
		}
	}
}

func TestWriteSampleSet_LoadsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")
	if _, err := WriteSampleSet(dir); err != nil {
		t.Fatalf("WriteSampleSet failed: %v", err)
	}

	stickers, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if len(stickers) != len(sampleShapes) {
		t.Errorf("expected %d stickers, got %d", len(sampleShapes), len(stickers))
	}
}

func TestSampleShapeNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, shape := range sampleShapes {
		if seen[shape.name] {
			t.Errorf("duplicate sample shape %q", shape.name)
		}
		seen[shape.name] = true
		if strings.ContainsAny(shape.name, " /\\") {
			t.Errorf("sample shape name %q is not filename safe", shape.name)
		}
	}
}
