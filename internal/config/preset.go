package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// SavePreset writes a frame configuration to a YAML preset file
func SavePreset(path string, frame Frame) error {
	data, err := yaml.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return nil
}

// LoadPreset reads a YAML preset file. Missing fields keep their
// defaults, and the result is validated before it is returned.
func LoadPreset(path string) (Frame, error) {
	frame := DefaultFrame()

	data, err := os.ReadFile(path)
	if err != nil {
		return frame, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &frame); err != nil {
		return frame, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	frame.Validate()
	return frame, nil
}
