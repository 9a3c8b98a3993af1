package services

import (
	"context"

	"taskhub/domain/dto"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}
