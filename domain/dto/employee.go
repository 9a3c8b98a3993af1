package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER USER"`
}

type UpdateEmployeeRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER USER"`
}

type EmployeeResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	TaskCount *int64         `json:"taskCount,omitempty"`
	Tasks     []TaskResponse `json:"tasks,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
