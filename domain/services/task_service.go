package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	// ListTasks applies the caller's role to the filter: USER-role callers
	// always receive their own tasks, whatever employee filter they asked for.
	ListTasks(ctx context.Context, callerID uuid.UUID, callerRole models.Role, filter repositories.TaskFilter) ([]*models.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}
