package generate

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stickerframe/stickerframe/internal/config"
	"github.com/stickerframe/stickerframe/internal/model"
	"github.com/stickerframe/stickerframe/internal/sticker"
)

// Service runs frame generation tasks
type Service struct {
	tasks       map[string]*model.GenerationTask
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	onUpdate    func(*model.GenerationTask) // callback for UI updates
}

// NewService creates a new generation service
func NewService(maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.GenerationTask),
		maxParallel: maxParallel,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.GenerationTask)) {
	s.onUpdate = callback
}

// SetMaxParallel sets how many tasks may run at once
func (s *Service) SetMaxParallel(max int) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if max < 1 {
		max = 1
	}
	s.maxParallel = max
}

// AddTask queues a new generation task for the given config. A zero
// seed picks a fresh one so repeated clicks give different frames.
func (s *Service) AddTask(cfg config.Frame, seed int64) (*model.GenerationTask, error) {
	cfg.Validate()
	if cfg.StickerDir == "" {
		return nil, fmt.Errorf("no sticker directory configured")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	task := &model.GenerationTask{
		ID:        uuid.NewString(),
		Config:    cfg,
		Status:    model.TaskStatusPending,
		Seed:      seed,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	canStart := s.activeCount < s.maxParallel
	s.tasksMutex.Unlock()

	if canStart {
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.GenerationTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.GenerationTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.GenerationTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// StopTask stops a running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}

	if !task.Status.IsActive() {
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	// The task goroutine observes this status and cancels composition
	task.Status = model.TaskStatusStopping
	s.notifyUpdate(task)
	return nil
}

// startTask runs one generation task to completion
func (s *Service) startTask(task *model.GenerationTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusStarting
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}()

	result, err := s.compose(ctx, task)

	s.tasksMutex.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			task.Status = model.TaskStatusError
			task.LastError = err.Error()
			log.Printf("Generation task %s failed: %v", task.ID, err)
		}
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Result = result
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// compose loads stickers and renders the frame for a task
func (s *Service) compose(ctx context.Context, task *model.GenerationTask) (*image.NRGBA, error) {
	stickers, err := sticker.LoadDirectory(task.Config.StickerDir)
	if err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusGenerating
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	gen := NewGenerator(task.Config, stickers, task.Seed)
	gen.SetProgressCallback(func(p Progress) {
		s.tasksMutex.Lock()
		task.Placed = p.Placed
		task.Attempted = p.Attempted
		task.Progress = float64(p.Attempted) / float64(MaxAttempts)
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	})

	return gen.Compose(ctx)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.GenerationTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}
