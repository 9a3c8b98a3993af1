package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/auth")

	group.Post("/register", h.AuthHandler.Register)
	group.Post("/login", h.AuthHandler.Login)
	group.Get("/me", auth.Protected(), h.AuthHandler.GetCurrentUser)
}
