package dto

import (
	"taskhub/domain/models"
)

func EmployeeToEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	if employee == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Role:      string(employee.Role),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// EmployeeToEmployeeListItem includes the aggregated owned-task count
// but not the tasks themselves.
func EmployeeToEmployeeListItem(employee *models.Employee) *EmployeeResponse {
	resp := EmployeeToEmployeeResponse(employee)
	if resp == nil {
		return nil
	}
	count := employee.TaskCount
	resp.TaskCount = &count
	return resp
}

// EmployeeToEmployeeDetail includes both the loaded tasks and their count.
func EmployeeToEmployeeDetail(employee *models.Employee) *EmployeeResponse {
	resp := EmployeeToEmployeeResponse(employee)
	if resp == nil {
		return nil
	}
	count := int64(len(employee.Tasks))
	resp.TaskCount = &count
	tasks := make([]TaskResponse, len(employee.Tasks))
	for i := range employee.Tasks {
		tasks[i] = *TaskToTaskResponse(&employee.Tasks[i], nil)
	}
	resp.Tasks = tasks
	return resp
}

func TaskToTaskResponse(task *models.Task, employee *models.Employee) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		EmployeeID:  task.EmployeeID,
		Employee:    EmployeeToEmployeeResponse(employee),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
