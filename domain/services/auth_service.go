package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.Employee, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.Employee, error)
	GetCurrentEmployee(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error)
}
