package utils

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessMessageResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func CreatedResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// DeletedResponse confirms a delete with no payload.
func DeletedResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Message: message,
	})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, errMsg string) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Error:   errMsg,
	})
}

func BadRequestResponse(c *fiber.Ctx, errMsg string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, errMsg)
}

// ValidationErrorResponse joins per-field messages into the message field.
func ValidationErrorResponse(c *fiber.Ctx, details string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{
		Success: false,
		Error:   "Validation failed",
		Message: details,
	})
}

func UnauthorizedResponse(c *fiber.Ctx, errMsg string) error {
	if errMsg == "" {
		errMsg = "Authentication required"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, errMsg)
}

func ForbiddenResponse(c *fiber.Ctx, errMsg string) error {
	if errMsg == "" {
		errMsg = "Access denied"
	}
	return ErrorResponse(c, fiber.StatusForbidden, errMsg)
}

func NotFoundResponse(c *fiber.Ctx, errMsg string) error {
	if errMsg == "" {
		errMsg = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, errMsg)
}

// InternalServerErrorResponse surfaces the underlying error text in message,
// matching the outermost handler contract.
func InternalServerErrorResponse(c *fiber.Ctx, errMsg string, detail string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
		Success: false,
		Error:   errMsg,
		Message: detail,
	})
}
