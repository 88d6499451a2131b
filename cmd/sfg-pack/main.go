package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stickerframe/stickerframe/internal/packager"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes, one per failure class so callers can branch on the result
const (
	exitOK            = 0
	exitFailure       = 1
	exitToolNotFound  = 2
	exitMissingInput  = 3
	exitToolFailed    = 4
	exitOutputMissing = 5
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := packager.DefaultOptions()

	flag.StringVar(&opts.SourceDir, "src", opts.SourceDir, "directory containing the application entry package")
	flag.StringVar(&opts.Target, "os", opts.Target, "target platform (windows, linux, darwin)")
	flag.StringVar(&opts.Icon, "icon", opts.Icon, "application icon (PNG), relative to -src")
	flag.StringVar(&opts.Tool, "tool", opts.Tool, "packaging tool binary")
	flag.BoolVar(&opts.Release, "release", opts.Release, "build in release mode")
	pause := flag.Bool("pause", false, "wait for a keypress before exiting")
	flag.Parse()

	fmt.Printf("Packaging Sticker Frame Generator v%s for %s...\n", version, opts.Target)

	code := pack(opts)

	if *pause {
		fmt.Print("Press Enter to exit...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return code
}

func pack(opts packager.Options) int {
	p := packager.New(opts)

	fmt.Println("Removing previous build output...")
	if err := p.Clean(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cleanup failed: %v\n", err)
		return exitFailure
	}

	if opts.Target == "windows" {
		if err := prepareWindowsResources(opts); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return exitFailure
		}
	}

	fmt.Println("Invoking packaging tool...")
	if err := p.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		switch {
		case errors.Is(err, packager.ErrToolNotFound):
			return exitToolNotFound
		case errors.Is(err, packager.ErrMissingInput):
			return exitMissingInput
		case errors.Is(err, packager.ErrToolFailed):
			return exitToolFailed
		case errors.Is(err, packager.ErrOutputMissing):
			return exitOutputMissing
		default:
			return exitFailure
		}
	}

	if err := p.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return exitOutputMissing
	}

	fmt.Printf("Build successful: %s\n", p.OutputPath())
	return exitOK
}

// prepareWindowsResources converts the PNG icon to ICO and writes the
// version-info resource next to the entry package so the linker embeds
// both into the executable.
func prepareWindowsResources(opts packager.Options) error {
	if opts.Icon == "" {
		return nil
	}
	pngPath := filepath.Join(opts.SourceDir, opts.Icon)
	icoPath := strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".ico"

	if err := packager.ConvertPNGToICO(pngPath, icoPath); err != nil {
		return err
	}
	return packager.WriteVersionResource(opts.SourceDir, opts.AppName, version, icoPath)
}
