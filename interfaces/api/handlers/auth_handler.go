package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email)

	token, employee, err := h.authService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return utils.BadRequestResponse(c, "Email already exists")
		}
		logger.ErrorContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Error:   "Failed to register",
			Message: err.Error(),
		})
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.EmployeeToEmployeeResponse(employee),
	}, "Registration successful")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, employee, err := h.authService.Login(ctx, &req)
	if err != nil {
		// every credential failure reads the same to the client
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.EmployeeToEmployeeResponse(employee),
	})
}

func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	caller, err := utils.GetEmployeeFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	employee, err := h.authService.GetCurrentEmployee(ctx, caller.ID)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.EmployeeToEmployeeResponse(employee))
}
