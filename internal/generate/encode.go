package generate

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/stickerframe/stickerframe/internal/config"
)

// JPEG quality used when saving frames
const jpegQuality = 95

// Save writes the frame to path in the given format and returns the
// path actually written. JPEG flattens transparency over the background
// color. WEBP has no pure-Go encoder, so it falls back to PNG with the
// extension adjusted accordingly.
func Save(img image.Image, path string, format config.Format, background color.NRGBA) (string, error) {
	if format == config.FormatWEBP {
		log.Printf("WEBP encoding is not available, saving %s as PNG", filepath.Base(path))
		format = config.FormatPNG
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	switch format {
	case config.FormatJPEG:
		flattened := flatten(img, background)
		if err := imaging.Encode(file, flattened, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return "", fmt.Errorf("failed to encode JPEG %s: %w", path, err)
		}
	default:
		if err := imaging.Encode(file, img, imaging.PNG); err != nil {
			return "", fmt.Errorf("failed to encode PNG %s: %w", path, err)
		}
	}

	return path, nil
}

// OutputFileName builds the conventional frame filename, e.g.
// "sticker_frame_1200x800_corner.png"
func OutputFileName(cfg config.Frame) string {
	return fmt.Sprintf("sticker_frame_%dx%d_%s.%s",
		cfg.TemplateWidth, cfg.TemplateHeight, cfg.Algorithm, cfg.OutputFormat.Extension())
}

// flatten composites img over an opaque background so formats without
// an alpha channel do not turn transparency black
func flatten(img image.Image, background color.NRGBA) *image.NRGBA {
	background.A = 255
	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), background)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
