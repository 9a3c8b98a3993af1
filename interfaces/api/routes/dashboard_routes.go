package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupDashboardRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(auth.Protected())

	dashboard.Get("/", h.DashboardHandler.GetStats)
}
