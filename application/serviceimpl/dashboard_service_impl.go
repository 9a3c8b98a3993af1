package serviceimpl

import (
	"context"
	"math"
	"time"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

const (
	DashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 30 * time.Second
	recentTasksLimit       = 5
)

// StatsCache is the slice of the redis client the dashboard cache needs.
// Every mutation path drops the key so a renamed owner or changed task
// never outlives the entry.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, target interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type DashboardServiceImpl struct {
	taskRepo     repositories.TaskRepository
	employeeRepo repositories.EmployeeRepository
	cache        StatsCache // nil when Redis is not configured
}

func NewDashboardService(taskRepo repositories.TaskRepository, employeeRepo repositories.EmployeeRepository, cache StatsCache) services.DashboardService {
	return &DashboardServiceImpl{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		cache:        cache,
	}
}

func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.cache != nil {
		var cached dto.DashboardStats
		if err := s.cache.GetJSON(ctx, DashboardStatsCacheKey, &cached); err == nil {
			logger.DebugContext(ctx, "Dashboard stats served from cache")
			return &cached, nil
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, DashboardStatsCacheKey, stats, dashboardStatsCacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache dashboard stats", "error", err)
		}
	}

	return stats, nil
}

func (s *DashboardServiceImpl) computeStats(ctx context.Context) (*dto.DashboardStats, error) {
	totalTasks, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	completedTasks, err := s.taskRepo.CountByStatus(ctx, models.StatusDone)
	if err != nil {
		return nil, err
	}

	todoTasks, err := s.taskRepo.CountByStatus(ctx, models.StatusTodo)
	if err != nil {
		return nil, err
	}

	inProgressTasks, err := s.taskRepo.CountByStatus(ctx, models.StatusInProgress)
	if err != nil {
		return nil, err
	}

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.taskRepo.ListRecent(ctx, recentTasksLimit)
	if err != nil {
		return nil, err
	}

	recentTasks := make([]dto.TaskResponse, len(recent))
	for i, task := range recent {
		recentTasks[i] = *dto.TaskToTaskResponse(task, &task.Employee)
	}

	return &dto.DashboardStats{
		TotalTasks:      totalTasks,
		CompletedTasks:  completedTasks,
		TotalEmployees:  totalEmployees,
		TodoTasks:       todoTasks,
		InProgressTasks: inProgressTasks,
		CompletionRate:  completionRate(completedTasks, totalTasks),
		RecentTasks:     recentTasks,
	}, nil
}

// completionRate is the rounded integer percentage of completed tasks,
// 0 when there are no tasks at all.
func completionRate(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
