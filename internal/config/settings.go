package config

import (
	"fyne.io/fyne/v2"

	"github.com/stickerframe/stickerframe/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir     = "output_directory"
	KeyStickerDir    = "sticker_directory"
	KeyMaxParallel   = "max_parallel_generations"
	KeyLanguage      = "app_language"
	KeyOutputFormat  = "output_format"
	KeyAutoSampleSet = "auto_sample_stickers"
)

// Default values
const (
	DefaultMaxParallel   = 1
	DefaultLanguage      = "system"
	DefaultAutoSampleSet = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory frames are saved to
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the directory frames are saved to
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetStickerDirectory returns the last used sticker directory, empty if never set
func (s *Settings) GetStickerDirectory() string {
	return s.app.Preferences().String(KeyStickerDir)
}

// SetStickerDirectory remembers the sticker directory between runs
func (s *Settings) SetStickerDirectory(dir string) {
	s.app.Preferences().SetString(KeyStickerDir, dir)
}

// GetMaxParallelGenerations returns how many frames may render at once
func (s *Settings) GetMaxParallelGenerations() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelGenerations(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelGenerations sets how many frames may render at once
func (s *Settings) SetMaxParallelGenerations(count int) {
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOutputFormat returns the preferred save format
func (s *Settings) GetOutputFormat() Format {
	format := s.app.Preferences().String(KeyOutputFormat)
	if format == "" {
		s.SetOutputFormat(FormatPNG)
		return FormatPNG
	}
	return Format(format)
}

// SetOutputFormat sets the preferred save format
func (s *Settings) SetOutputFormat(format Format) {
	s.app.Preferences().SetString(KeyOutputFormat, string(format))
}

// GetAutoSampleStickers returns whether a sample sticker set is created
// when no sticker directory is configured
func (s *Settings) GetAutoSampleStickers() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoSampleSet, DefaultAutoSampleSet)
}

// SetAutoSampleStickers sets whether a sample sticker set is created on first run
func (s *Settings) SetAutoSampleStickers(auto bool) {
	s.app.Preferences().SetBool(KeyAutoSampleSet, auto)
}

// GetFormatOptions returns the selectable output formats
func (s *Settings) GetFormatOptions() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatWEBP}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
