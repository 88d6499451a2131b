package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "icon.png"
)

// LoadLogoResource loads the application icon from the bundled assets
// directory next to the executable.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join("assets", AppIcon))
}
