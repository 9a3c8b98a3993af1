package models

import (
	"testing"
	"time"
)

func TestTaskStatusValid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		valid  bool
	}{
		{StatusTodo, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{TaskStatus("CANCELLED"), false},
		{TaskStatus("todo"), false},
		{TaskStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.valid {
				t.Errorf("TaskStatus(%q).Valid() = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		task    Task
		overdue bool
	}{
		{"past due open", Task{DueDate: &past, Status: StatusTodo}, true},
		{"past due in progress", Task{DueDate: &past, Status: StatusInProgress}, true},
		{"past due done", Task{DueDate: &past, Status: StatusDone}, false},
		{"future due", Task{DueDate: &future, Status: StatusTodo}, false},
		{"no due date", Task{Status: StatusTodo}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.overdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.overdue)
			}
		})
	}
}
