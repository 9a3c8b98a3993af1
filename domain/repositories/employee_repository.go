package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	Update(ctx context.Context, id uuid.UUID, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Employee, error)
	Count(ctx context.Context) (int64, error)
}
