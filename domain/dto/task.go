package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NullableTime distinguishes an absent key from an explicit null in
// PUT bodies: absent leaves the field alone, null clears it.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	Status      string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	EmployeeID  uuid.UUID  `json:"employeeId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title       string       `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=1000"`
	Status      string       `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     NullableTime `json:"dueDate" validate:"-"`
	EmployeeID  *uuid.UUID   `json:"employeeId" validate:"omitempty"`
}

type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	DueDate     *time.Time        `json:"dueDate"`
	EmployeeID  uuid.UUID         `json:"employeeId"`
	Employee    *EmployeeResponse `json:"employee,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
