package serviceimpl

import (
	"context"
	"time"

	"taskhub/domain/repositories"
	"taskhub/pkg/logger"
)

// OverdueSweeper periodically reports tasks that are past due and still
// open. It only observes; due dates stay owned by the task endpoints.
type OverdueSweeper struct {
	taskRepo repositories.TaskRepository
}

func NewOverdueSweeper(taskRepo repositories.TaskRepository) *OverdueSweeper {
	return &OverdueSweeper{taskRepo: taskRepo}
}

func (s *OverdueSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tasks, err := s.taskRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		logger.Error("Overdue sweep failed", "error", err)
		return
	}

	if len(tasks) == 0 {
		logger.Debug("Overdue sweep found no overdue tasks")
		return
	}

	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID.String()
	}

	logger.Warn("Overdue tasks detected", "count", len(tasks), "task_ids", ids)
}
