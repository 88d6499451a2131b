package model

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/stickerframe/stickerframe/internal/config"
)

// GenerationTask represents a single frame generation task
type GenerationTask struct {
	ID         string
	Config     config.Frame // snapshot taken when the task was queued
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Placed     int     // stickers composited so far
	Attempted  int     // placement attempts made
	Seed       int64   // RNG seed the task was started with
	LastError  string  // last error message if any
	OutputPath string  // path the frame was saved to, empty until saved
	Result     image.Image
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns the task runtime. For running tasks it is the time
// since start, for finished tasks the start-to-finish duration.
func (gt *GenerationTask) Elapsed() time.Duration {
	if gt.StartedAt.IsZero() {
		return 0
	}
	if gt.FinishedAt.IsZero() {
		return time.Since(gt.StartedAt)
	}
	return gt.FinishedAt.Sub(gt.StartedAt)
}

// GetDisplayName returns the saved filename, or a short task label when
// the frame has not been saved yet
func (gt *GenerationTask) GetDisplayName() string {
	if gt.OutputPath != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(gt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if gt.ID == "" {
		return ""
	}
	short := gt.ID
	if idx := strings.Index(short, "-"); idx > 0 {
		short = short[:idx]
	}
	return fmt.Sprintf("frame-%s", short)
}
