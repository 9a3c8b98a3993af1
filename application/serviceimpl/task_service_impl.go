package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo     repositories.TaskRepository
	employeeRepo repositories.EmployeeRepository
	events       ports.EventPublisher
	cache        StatsCache // nil when Redis is not configured
}

func NewTaskService(taskRepo repositories.TaskRepository, employeeRepo repositories.EmployeeRepository, events ports.EventPublisher, cache StatsCache) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		events:       events,
		cache:        cache,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		logger.WarnContext(ctx, "Employee not found for task creation", "employee_id", req.EmployeeID)
		return nil, models.ErrEmployeeNotFound
	}

	status := models.StatusTodo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
		EmployeeID:  req.EmployeeID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "employee_id", req.EmployeeID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "employee_id", task.EmployeeID)
	s.publishEvent(ctx, ports.TaskEventCreated, task)
	s.dropStatsCache(ctx)

	// reload so the owner is attached to the response
	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return task, nil
	}
	return created, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, models.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, callerID uuid.UUID, callerRole models.Role, filter repositories.TaskFilter) ([]*models.Task, error) {
	// USER-role callers only ever see their own tasks: the caller's id
	// overrides any employee filter supplied by the request, silently.
	if callerRole == models.RoleUser {
		filter.EmployeeID = callerID
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}

	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, models.ErrTaskNotFound
	}

	// reassignment must point at a live employee
	if req.EmployeeID != nil && *req.EmployeeID != task.EmployeeID {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			logger.WarnContext(ctx, "Employee not found for task reassignment", "employee_id", *req.EmployeeID)
			return nil, models.ErrEmployeeNotFound
		}
		task.EmployeeID = *req.EmployeeID
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	// present-but-empty clears the description
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	// an explicit null clears the due date, an absent key keeps it
	if req.DueDate.Set {
		task.DueDate = req.DueDate.Value
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	s.publishEvent(ctx, ports.TaskEventUpdated, task)
	s.dropStatsCache(ctx)

	updated, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task, nil
	}
	return updated, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return models.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	s.publishEvent(ctx, ports.TaskEventDeleted, task)
	s.dropStatsCache(ctx)

	return nil
}

// publishEvent is best-effort: a broker failure is logged and swallowed.
func (s *TaskServiceImpl) publishEvent(ctx context.Context, eventType string, task *models.Task) {
	event := &ports.TaskEvent{
		Type:       eventType,
		TaskID:     task.ID,
		EmployeeID: task.EmployeeID,
		Title:      task.Title,
		Status:     task.Status,
		OccurredAt: time.Now(),
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "type", eventType, "task_id", task.ID, "error", err)
	}
}

func (s *TaskServiceImpl) dropStatsCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, DashboardStatsCacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to drop dashboard stats cache", "error", err)
	}
}
