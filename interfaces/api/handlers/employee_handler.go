package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type EmployeeHandler struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandler(employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	ctx := c.UserContext()

	employees, err := h.employeeService.ListEmployees(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch employees", "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to fetch employees", err.Error())
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = *dto.EmployeeToEmployeeListItem(employee)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	ctx := c.UserContext()

	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid employee ID")
	}

	employee, err := h.employeeService.GetEmployee(ctx, employeeID)
	if err != nil {
		return utils.NotFoundResponse(c, "Employee not found")
	}

	return utils.SuccessResponse(c, dto.EmployeeToEmployeeDetail(employee))
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	employee, err := h.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return utils.BadRequestResponse(c, "Email already exists")
		}
		logger.ErrorContext(ctx, "Failed to create employee", "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to create employee", err.Error())
	}

	return utils.CreatedResponse(c, dto.EmployeeToEmployeeResponse(employee), "Employee created successfully")
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	ctx := c.UserContext()

	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid employee ID")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	employee, err := h.employeeService.UpdateEmployee(ctx, employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmployeeNotFound):
			return utils.NotFoundResponse(c, "Employee not found")
		case errors.Is(err, models.ErrEmailTaken):
			return utils.BadRequestResponse(c, "Email already exists")
		}
		logger.ErrorContext(ctx, "Failed to update employee", "employee_id", employeeID, "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to update employee", err.Error())
	}

	return utils.SuccessMessageResponse(c, dto.EmployeeToEmployeeResponse(employee), "Employee updated successfully")
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	ctx := c.UserContext()

	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid employee ID")
	}

	if err := h.employeeService.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			return utils.NotFoundResponse(c, "Employee not found")
		}
		logger.ErrorContext(ctx, "Failed to delete employee", "employee_id", employeeID, "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to delete employee", err.Error())
	}

	return utils.DeletedResponse(c, "Employee deleted successfully")
}
