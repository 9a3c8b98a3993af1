package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID uuid.UUID, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
}
