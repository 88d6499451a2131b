package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/stickerframe/stickerframe/internal/config"
	"github.com/stickerframe/stickerframe/internal/generate"
	"github.com/stickerframe/stickerframe/internal/platform"
	"github.com/stickerframe/stickerframe/internal/sticker"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatalf("sfg-batch: %v", err)
	}
}

func run() error {
	var (
		presetPath  = flag.String("preset", "", "YAML preset to load before applying flags")
		stickersDir = flag.String("stickers", "", "directory with sticker images")
		outDir      = flag.String("out", ".", "directory for generated frames")
		count       = flag.Int("count", 1, "number of frames to generate")
		width       = flag.Int("width", 0, "template width in pixels")
		height      = flag.Int("height", 0, "template height in pixels")
		algorithm   = flag.String("algorithm", "", "placement algorithm (random, uniform, gradient, corner)")
		density     = flag.Float64("density", 0, "sticker density from 0.01 to 1.0")
		format      = flag.String("format", "", "output format (PNG, JPEG, WEBP)")
		seed        = flag.Int64("seed", 0, "base random seed, 0 picks a fresh one")
		samples     = flag.Bool("samples", false, "write the built-in sample sticker set into -stickers first")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sfg-batch v%s\n", version)
		return nil
	}

	cfg := config.DefaultFrame()
	if *presetPath != "" {
		loaded, err := config.LoadPreset(*presetPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags that were passed explicitly override the preset
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.TemplateWidth = *width
		case "height":
			cfg.TemplateHeight = *height
		case "algorithm":
			cfg.Algorithm = config.Algorithm(*algorithm)
		case "density":
			cfg.StickerDensity = *density
		case "format":
			cfg.OutputFormat = config.Format(strings.ToUpper(*format))
		}
	})

	if *stickersDir == "" {
		return fmt.Errorf("-stickers is required")
	}
	if *count < 1 {
		return fmt.Errorf("-count must be at least 1")
	}

	if *samples {
		if err := platform.CreateDirectoryIfNotExists(*stickersDir); err != nil {
			return err
		}
		if _, err := sticker.WriteSampleSet(*stickersDir); err != nil {
			return err
		}
	}

	cfg.StickerDir = *stickersDir
	cfg.Validate()

	stickers, err := sticker.LoadDirectory(*stickersDir)
	if err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(*outDir); err != nil {
		return err
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := progressbar.NewOptions(*count,
		progressbar.OptionSetDescription(fmt.Sprintf("Generating %d frames", *count)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
	)

	for i := 0; i < *count; i++ {
		gen := generate.NewGenerator(cfg, stickers, baseSeed+int64(i))
		img, err := gen.Compose(ctx)
		if err != nil {
			return err
		}

		path := filepath.Join(*outDir, numberedName(cfg, i, *count))
		saved, err := generate.Save(img, path, cfg.OutputFormat, cfg.Background.Color())
		if err != nil {
			return err
		}

		log.Printf("Saved %s", saved)
		bar.Add(1)
	}

	return nil
}

// numberedName suffixes the conventional frame filename with an index
// when more than one frame is requested.
func numberedName(cfg config.Frame, index, total int) string {
	name := generate.OutputFileName(cfg)
	if total == 1 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(name, ext), index+1, ext)
}
