package sticker

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	// Register WEBP decoding for sticker directories exported from chat apps
	_ "golang.org/x/image/webp"
)

// Extensions lists the sticker file types the loader accepts
var Extensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// ListFiles returns the sticker image files in dir, sorted by name
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sticker directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, accepted := range Extensions {
			if ext == accepted {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// LoadDirectory loads every sticker image in dir. Unreadable files are
// skipped with a log line; an error is returned only when the directory
// cannot be read or yields no usable stickers at all.
func LoadDirectory(dir string) ([]image.Image, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}

	var stickers []image.Image
	for _, file := range files {
		img, err := imaging.Open(file)
		if err != nil {
			log.Printf("Skipping unreadable sticker %s: %v", file, err)
			continue
		}
		stickers = append(stickers, img)
	}

	if len(stickers) == 0 {
		return nil, fmt.Errorf("no usable stickers in %s", dir)
	}
	return stickers, nil
}

// Count returns how many sticker files dir contains, 0 on any error.
// The UI uses it for the status line, where failure is not interesting.
func Count(dir string) int {
	files, err := ListFiles(dir)
	if err != nil {
		return 0
	}
	return len(files)
}
