package dto

import (
	"testing"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

func TestEmployeeListItemUsesAggregatedCount(t *testing.T) {
	// list queries carry the count as an aggregate, tasks stay unloaded
	employee := &models.Employee{
		ID:        uuid.New(),
		Name:      "Jane",
		Email:     "jane@company.com",
		Role:      models.RoleManager,
		TaskCount: 7,
	}

	resp := EmployeeToEmployeeListItem(employee)
	if resp.TaskCount == nil || *resp.TaskCount != 7 {
		t.Errorf("TaskCount = %v, want 7", resp.TaskCount)
	}
	if resp.Tasks != nil {
		t.Errorf("Tasks = %v, want nil on list items", resp.Tasks)
	}
}

func TestEmployeeDetailCountsLoadedTasks(t *testing.T) {
	employee := &models.Employee{
		ID:    uuid.New(),
		Name:  "Jane",
		Email: "jane@company.com",
		Role:  models.RoleManager,
		Tasks: []models.Task{
			{ID: uuid.New(), Title: "T1", Status: models.StatusTodo},
			{ID: uuid.New(), Title: "T2", Status: models.StatusDone},
		},
	}

	resp := EmployeeToEmployeeDetail(employee)
	if resp.TaskCount == nil || *resp.TaskCount != 2 {
		t.Errorf("TaskCount = %v, want 2", resp.TaskCount)
	}
	if len(resp.Tasks) != 2 {
		t.Errorf("len(Tasks) = %d, want 2", len(resp.Tasks))
	}
}
