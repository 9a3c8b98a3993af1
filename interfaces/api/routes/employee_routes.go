package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupEmployeeRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	employees := api.Group("/employees")
	employees.Use(auth.Protected())

	employees.Get("/", h.EmployeeHandler.ListEmployees)
	employees.Get("/:id", h.EmployeeHandler.GetEmployee)
	employees.Post("/", h.EmployeeHandler.CreateEmployee)
	employees.Put("/:id", h.EmployeeHandler.UpdateEmployee)
	employees.Delete("/:id", h.EmployeeHandler.DeleteEmployee)
}
