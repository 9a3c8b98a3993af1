package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

// TaskFilter narrows task listing. Zero values mean "no filter".
type TaskFilter struct {
	Status     models.TaskStatus
	EmployeeID uuid.UUID
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Task, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Task, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.TaskStatus) (int64, error)
}
