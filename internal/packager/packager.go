package packager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Error classes for the distinct ways a packaging run can fail.
// Callers branch on these with errors.Is.
var (
	ErrToolNotFound  = errors.New("packaging tool not found")
	ErrMissingInput  = errors.New("missing build input")
	ErrToolFailed    = errors.New("packaging tool failed")
	ErrOutputMissing = errors.New("output executable missing")
)

// Directories produced by a packaging run, removed by Clean
const (
	BuildDir = "build"
	DistDir  = "dist"
)

// Options configures a packaging run
type Options struct {
	AppName   string // base name of the produced executable
	AppID     string // reverse-DNS application ID
	SourceDir string // directory containing the entry package
	Icon      string // application icon (PNG), relative to SourceDir
	AssetsDir string // bundled data directory, relative to SourceDir
	Target    string // GOOS-style target platform
	Release   bool
	Tool      string // packaging tool binary name
}

// DefaultOptions returns the fixed argument set used by the release build
func DefaultOptions() Options {
	return Options{
		AppName:   "StickerFrameGenerator",
		AppID:     "com.stickerframe.stickerframe",
		SourceDir: ".",
		Icon:      filepath.Join("assets", "icon.png"),
		AssetsDir: "assets",
		Target:    runtime.GOOS,
		Release:   true,
		Tool:      "fyne",
	}
}

// Packager drives one sequential packaging run: clean, invoke the
// external tool, collect the artifact into dist and verify it.
type Packager struct {
	opts Options
}

// New creates a packager, filling in defaults for zero-value options
func New(opts Options) *Packager {
	def := DefaultOptions()
	if opts.AppName == "" {
		opts.AppName = def.AppName
	}
	if opts.AppID == "" {
		opts.AppID = def.AppID
	}
	if opts.SourceDir == "" {
		opts.SourceDir = def.SourceDir
	}
	if opts.Target == "" {
		opts.Target = def.Target
	}
	if opts.Tool == "" {
		opts.Tool = def.Tool
	}
	return &Packager{opts: opts}
}

// OutputPath returns where the packaged executable is expected after a run
func (p *Packager) OutputPath() string {
	name := p.opts.AppName
	switch p.opts.Target {
	case "windows":
		name += ".exe"
	case "darwin":
		name += ".app"
	}
	return filepath.Join(p.opts.SourceDir, DistDir, name)
}

// Clean removes prior build and dist directories. Removing a path that
// does not exist is a no-op, so Clean is safe to run repeatedly.
func (p *Packager) Clean() error {
	for _, dir := range []string{BuildDir, DistDir} {
		path := filepath.Join(p.opts.SourceDir, dir)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// Run invokes the packaging tool and collects the artifact into dist.
// The tool's exit status is the primary success criterion; the
// artifact's existence is checked afterwards as a sanity check.
func (p *Packager) Run(ctx context.Context) error {
	tool, err := exec.LookPath(p.opts.Tool)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, p.opts.Tool)
	}

	if err := p.checkInputs(); err != nil {
		return err
	}

	args := []string{"package", "-os", p.opts.Target, "-name", p.opts.AppName, "-appID", p.opts.AppID}
	if p.opts.Icon != "" {
		args = append(args, "-icon", p.opts.Icon)
	}
	if p.opts.Release {
		args = append(args, "-release")
	}

	log.Printf("Running %s %s", tool, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = p.opts.SourceDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v: %s", ErrToolFailed, err, tail(output))
	}

	return p.collect()
}

// Verify checks that the expected executable exists in dist
func (p *Packager) Verify() error {
	if _, err := os.Stat(p.OutputPath()); err != nil {
		return fmt.Errorf("%w: %s", ErrOutputMissing, p.OutputPath())
	}
	return nil
}

// Package runs the full sequence: cleanup, tool invocation, verification
func (p *Packager) Package(ctx context.Context) error {
	if err := p.Clean(); err != nil {
		return err
	}
	if err := p.Run(ctx); err != nil {
		return err
	}
	return p.Verify()
}

// checkInputs verifies the source and assets directories exist before
// the tool is invoked, so a missing input is reported as such instead
// of surfacing as an opaque tool failure.
func (p *Packager) checkInputs() error {
	if _, err := os.Stat(p.opts.SourceDir); err != nil {
		return fmt.Errorf("%w: source directory %s", ErrMissingInput, p.opts.SourceDir)
	}
	if p.opts.AssetsDir != "" {
		assets := filepath.Join(p.opts.SourceDir, p.opts.AssetsDir)
		if _, err := os.Stat(assets); err != nil {
			return fmt.Errorf("%w: assets directory %s", ErrMissingInput, assets)
		}
	}
	if p.opts.Icon != "" {
		icon := filepath.Join(p.opts.SourceDir, p.opts.Icon)
		if _, err := os.Stat(icon); err != nil {
			return fmt.Errorf("%w: icon %s", ErrMissingInput, icon)
		}
	}
	return nil
}

// collect moves the tool's artifact into dist and copies bundled data
// next to it. The tool writes the artifact into the source directory.
func (p *Packager) collect() error {
	name := filepath.Base(p.OutputPath())
	artifact := filepath.Join(p.opts.SourceDir, name)

	if _, err := os.Stat(artifact); err != nil {
		return fmt.Errorf("%w: tool exited cleanly but %s was not produced", ErrOutputMissing, artifact)
	}

	dist := filepath.Join(p.opts.SourceDir, DistDir)
	if err := os.MkdirAll(dist, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dist, err)
	}
	if err := os.Rename(artifact, p.OutputPath()); err != nil {
		return fmt.Errorf("failed to move artifact into %s: %w", dist, err)
	}

	if p.opts.AssetsDir != "" {
		src := filepath.Join(p.opts.SourceDir, p.opts.AssetsDir)
		dst := filepath.Join(dist, filepath.Base(p.opts.AssetsDir))
		if err := copyDir(src, dst); err != nil {
			return fmt.Errorf("failed to bundle %s: %w", p.opts.AssetsDir, err)
		}
	}
	return nil
}

// copyDir copies a directory tree, regular files only
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return copyFile(path, target, info.Mode())
	})
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// tail returns the last few lines of tool output for error messages
func tail(output []byte) string {
	text := strings.TrimSpace(string(output))
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "\n")
}
