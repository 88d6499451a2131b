package generate

import (
	"github.com/stickerframe/stickerframe/internal/config"
	"github.com/stickerframe/stickerframe/internal/model"
)

// Composer defines the interface for the generation service.
type Composer interface {
	SetUpdateCallback(func(*model.GenerationTask))
	AddTask(cfg config.Frame, seed int64) (*model.GenerationTask, error)
	GetTask(id string) (*model.GenerationTask, bool)
	GetAllTasks() []*model.GenerationTask
	StopTask(id string) error

	// SetMaxParallel sets how many frames may render at once
	SetMaxParallel(max int)
}
