package handlers

import (
	"taskhub/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService      services.AuthService
	EmployeeService  services.EmployeeService
	TaskService      services.TaskService
	DashboardService services.DashboardService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler      *AuthHandler
	EmployeeHandler  *EmployeeHandler
	TaskHandler      *TaskHandler
	DashboardHandler *DashboardHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:      NewAuthHandler(services.AuthService),
		EmployeeHandler:  NewEmployeeHandler(services.EmployeeService),
		TaskHandler:      NewTaskHandler(services.TaskService),
		DashboardHandler: NewDashboardHandler(services.DashboardService),
	}
}
