package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	SetupHealthRoutes(app)

	api := app.Group("/api")

	SetupAuthRoutes(api, h, auth)
	SetupTaskRoutes(api, h, auth)
	SetupEmployeeRoutes(api, h, auth)
	SetupDashboardRoutes(api, h, auth)

	// catch-all must be registered last
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
