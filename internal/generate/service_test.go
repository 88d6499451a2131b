package generate

import (
	"testing"
	"time"

	"github.com/stickerframe/stickerframe/internal/model"
	"github.com/stickerframe/stickerframe/internal/sticker"
)

func TestNewService(t *testing.T) {
	service := NewService(2)

	if service == nil {
		t.Fatal("NewService returned nil")
	}
	if service.maxParallel != 2 {
		t.Errorf("Expected maxParallel=2, got %d", service.maxParallel)
	}
	if service.tasks == nil {
		t.Error("Expected tasks map to be initialized")
	}

	// Degenerate limit is clamped
	if s := NewService(0); s.maxParallel != 1 {
		t.Errorf("Expected maxParallel=1 for zero limit, got %d", s.maxParallel)
	}
}

func TestAddTask_NoStickerDir(t *testing.T) {
	service := NewService(1)

	frame := smallFrame()
	frame.StickerDir = ""

	if _, err := service.AddTask(frame, 1); err == nil {
		t.Error("Expected error for empty sticker directory, got nil")
	}
}

func TestAddTask_Completes(t *testing.T) {
	dir := t.TempDir()
	if _, err := sticker.WriteSampleSet(dir); err != nil {
		t.Fatalf("failed to write sample stickers: %v", err)
	}

	service := NewService(1)

	frame := smallFrame()
	frame.StickerDir = dir

	task, err := service.AddTask(frame, 7)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.ID == "" {
		t.Error("Expected task to have an ID")
	}
	if task.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", task.Seed)
	}

	waitForFinish(t, service, task.ID)

	got, ok := service.GetTask(task.ID)
	if !ok {
		t.Fatal("task disappeared from service")
	}
	if got.Status != model.TaskStatusCompleted {
		t.Errorf("Expected status Completed, got %s (err: %s)", got.Status, got.LastError)
	}
	if got.Result == nil {
		t.Error("completed task has no result image")
	}
}

func TestAddTask_FreshSeedWhenZero(t *testing.T) {
	service := NewService(1)

	frame := smallFrame()
	frame.StickerDir = t.TempDir() // empty dir, task will error out, seed is set regardless

	task, err := service.AddTask(frame, 0)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.Seed == 0 {
		t.Error("Expected a fresh seed for zero input")
	}

	waitForFinish(t, service, task.ID)
}

func TestGetTask_NotFound(t *testing.T) {
	service := NewService(1)

	if _, ok := service.GetTask("missing"); ok {
		t.Error("Expected GetTask to report missing task")
	}
}

func TestGetAllTasks(t *testing.T) {
	service := NewService(1)

	frame := smallFrame()
	frame.StickerDir = t.TempDir()

	first, _ := service.AddTask(frame, 1)
	second, _ := service.AddTask(frame, 2)

	tasks := service.GetAllTasks()
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	waitForFinish(t, service, first.ID)
	waitForFinish(t, service, second.ID)
}

func TestStopTask_NotFound(t *testing.T) {
	service := NewService(1)

	if err := service.StopTask("missing"); err == nil {
		t.Error("Expected error for unknown task, got nil")
	}
}

func TestStopTask_NotActive(t *testing.T) {
	dir := t.TempDir()
	if _, err := sticker.WriteSampleSet(dir); err != nil {
		t.Fatalf("failed to write sample stickers: %v", err)
	}

	service := NewService(1)

	frame := smallFrame()
	frame.StickerDir = dir

	task, err := service.AddTask(frame, 3)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	waitForFinish(t, service, task.ID)

	if err := service.StopTask(task.ID); err == nil {
		t.Error("Expected error when stopping a finished task, got nil")
	}
}

func TestService_UpdateCallback(t *testing.T) {
	dir := t.TempDir()
	if _, err := sticker.WriteSampleSet(dir); err != nil {
		t.Fatalf("failed to write sample stickers: %v", err)
	}

	service := NewService(1)

	updates := make(chan model.TaskStatus, 256)
	service.SetUpdateCallback(func(task *model.GenerationTask) {
		select {
		case updates <- task.Status:
		default:
		}
	})

	frame := smallFrame()
	frame.StickerDir = dir

	task, err := service.AddTask(frame, 5)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	waitForFinish(t, service, task.ID)

	seen := make(map[model.TaskStatus]bool)
	for {
		select {
		case status := <-updates:
			seen[status] = true
		default:
			if !seen[model.TaskStatusCompleted] {
				t.Error("callback never reported a completed status")
			}
			return
		}
	}
}

// waitForFinish polls until the task reaches a terminal status
func waitForFinish(t *testing.T, service *Service, id string) {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		if task, ok := service.GetTask(id); ok && task.Status.IsFinished() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("task did not finish in time")
}
