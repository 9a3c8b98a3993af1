package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// ErrorHandler is the outermost boundary: anything a handler did not map
// itself surfaces as 500 with a generic message plus the error text.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok && e.Code != fiber.StatusInternalServerError {
			return utils.ErrorResponse(c, e.Code, e.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)

		return utils.InternalServerErrorResponse(c, "Something went wrong!", err.Error())
	}
}
