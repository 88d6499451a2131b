package sticker

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestListFiles_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.png", "b.jpg", "c.jpeg", "d.webp", "e.txt", "f.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	if len(files) != 4 {
		t.Fatalf("expected 4 sticker files, got %d: %v", len(files), files)
	}

	// Sorted by name
	expected := []string{"a.png", "b.jpg", "c.jpeg", "d.webp"}
	for i, file := range files {
		if filepath.Base(file) != expected[i] {
			t.Errorf("file %d: expected %s, got %s", i, expected[i], filepath.Base(file))
		}
	}
}

func TestListFiles_MissingDirectory(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestLoadDirectory_SkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()

	// One real sticker
	img := imaging.New(32, 32, color.NRGBA{R: 255, A: 255})
	if err := imaging.Save(img, filepath.Join(dir, "real.png")); err != nil {
		t.Fatalf("failed to save sticker: %v", err)
	}

	// One file with an image extension but garbage content
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to create broken file: %v", err)
	}

	stickers, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}

	if len(stickers) != 1 {
		t.Errorf("expected 1 loaded sticker, got %d", len(stickers))
	}
}

func TestLoadDirectory_EmptyDirectory(t *testing.T) {
	_, err := LoadDirectory(t.TempDir())
	if err == nil {
		t.Error("Expected error for directory without stickers, got nil")
	}
}

func TestCount(t *testing.T) {
	dir := t.TempDir()

	if Count(dir) != 0 {
		t.Error("Count of empty directory should be 0")
	}

	for _, name := range []string{"a.png", "b.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	if Count(dir) != 2 {
		t.Errorf("expected count 2, got %d", Count(dir))
	}

	if Count(filepath.Join(dir, "missing")) != 0 {
		t.Error("Count of missing directory should be 0")
	}
}
