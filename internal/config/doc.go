package config

// Package config holds the frame generation configuration, YAML preset
// serialization, and app-level settings persisted via Fyne preferences.
