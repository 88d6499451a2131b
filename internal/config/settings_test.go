package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/frames"
	settings.SetOutputDirectory(customDir)

	retrievedDir := settings.GetOutputDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, retrievedDir)
	}
}

func TestMaxParallelGenerations(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxParallel := settings.GetMaxParallelGenerations()
	if maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	// Test setting custom value
	settings.SetMaxParallelGenerations(3)
	if settings.GetMaxParallelGenerations() != 3 {
		t.Errorf("Expected max parallel 3, got %d", settings.GetMaxParallelGenerations())
	}

	// Test boundary values
	settings.SetMaxParallelGenerations(0) // Should be clamped to 1
	if settings.GetMaxParallelGenerations() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelGenerations(99) // Should be clamped to 4
	if settings.GetMaxParallelGenerations() != 4 {
		t.Error("Max parallel should be clamped to maximum 4")
	}
}

func TestOutputFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetOutputFormat() != FormatPNG {
		t.Errorf("Expected default format PNG, got %s", settings.GetOutputFormat())
	}

	settings.SetOutputFormat(FormatJPEG)
	if settings.GetOutputFormat() != FormatJPEG {
		t.Errorf("Expected format JPEG, got %s", settings.GetOutputFormat())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
}

func TestStickerDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetStickerDirectory() != "" {
		t.Error("Sticker directory should default to empty")
	}

	settings.SetStickerDirectory("/stickers")
	if settings.GetStickerDirectory() != "/stickers" {
		t.Errorf("Expected sticker directory /stickers, got %s", settings.GetStickerDirectory())
	}
}
