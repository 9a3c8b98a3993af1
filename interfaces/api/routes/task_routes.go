package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	tasks := api.Group("/tasks")
	tasks.Use(auth.Protected())

	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
