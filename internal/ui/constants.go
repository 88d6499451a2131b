package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDice     = "🎲"
	IconFolder   = "📁"
	IconSaveDisk = "💾"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	SettingsPanelWidth float32 = 320
	PreviewMinWidth    float32 = 480
	PreviewMinHeight   float32 = 320

	WindowDefaultWidth  float32 = 1000
	WindowDefaultHeight float32 = 700
)

// Slider ranges shown in the settings panel
const (
	DensitySliderMin = 0.01
	DensitySliderMax = 1.0
	OpacitySliderMin = 0.1
	OpacitySliderMax = 1.0
)

// Debounce durations
const (
	UIUpdateDebounce    = 100 * time.Millisecond
	AutoPreviewDebounce = 400 * time.Millisecond
)
