package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the generation service and renders the settings
// panel, the live preview pane, and dialogs. All UI strings are localized via
// Localization.
