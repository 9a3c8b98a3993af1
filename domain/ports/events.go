package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

const (
	TaskEventCreated = "created"
	TaskEventUpdated = "updated"
	TaskEventDeleted = "deleted"
)

// TaskEvent is published on every task lifecycle change so external
// consumers (notifiers, reporting) can react to assignments.
type TaskEvent struct {
	Type       string            `json:"type"`
	TaskID     uuid.UUID         `json:"taskId"`
	EmployeeID uuid.UUID         `json:"employeeId"`
	Title      string            `json:"title"`
	Status     models.TaskStatus `json:"status"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// EventPublisher abstracts the broker. Publishing is best-effort: a failed
// publish must never fail the request that triggered it.
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
	Close()
}
