package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	caller, err := utils.GetEmployeeFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var filter repositories.TaskFilter

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if !status.Valid() {
			return utils.BadRequestResponse(c, "Invalid status filter")
		}
		filter.Status = status
	}

	if employeeIDStr := c.Query("employeeId"); employeeIDStr != "" {
		employeeID, err := uuid.Parse(employeeIDStr)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid employee ID")
		}
		filter.EmployeeID = employeeID
	}

	tasks, err := h.taskService.ListTasks(ctx, caller.ID, caller.Role, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch tasks", "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to fetch tasks", err.Error())
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *dto.TaskToTaskResponse(task, &task.Employee)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, &task.Employee))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			return utils.NotFoundResponse(c, "Employee not found")
		}
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to create task", err.Error())
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task, &task.Employee), "Task created successfully")
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, models.ErrEmployeeNotFound):
			return utils.NotFoundResponse(c, "Employee not found")
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to update task", err.Error())
	}

	return utils.SuccessMessageResponse(c, dto.TaskToTaskResponse(task, &task.Employee), "Task updated successfully")
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to delete task", err.Error())
	}

	return utils.DeletedResponse(c, "Task deleted successfully")
}
