package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.dashboardService.GetStats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch dashboard statistics", "error", err)
		return utils.InternalServerErrorResponse(c, "Failed to fetch dashboard statistics", err.Error())
	}

	return utils.SuccessResponse(c, stats)
}
