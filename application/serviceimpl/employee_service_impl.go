package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type EmployeeServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
	cache        StatsCache // nil when Redis is not configured
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository, cache StatsCache) services.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		cache:        cache,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	existing, _ := s.employeeRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		logger.WarnContext(ctx, "Employee creation failed - email already exists", "email", req.Email)
		return nil, models.ErrEmailTaken
	}

	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	employee := &models.Employee{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		logger.ErrorContext(ctx, "Failed to create employee", "email", req.Email, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Employee created", "employee_id", employee.ID, "email", employee.Email)
	s.dropStatsCache(ctx)

	return employee, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByIDWithTasks(ctx, employeeID)
	if err != nil {
		return nil, models.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, employeeID uuid.UUID, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		logger.WarnContext(ctx, "Employee not found for update", "employee_id", employeeID)
		return nil, models.ErrEmployeeNotFound
	}

	// an email change must not collide with a different employee;
	// keeping the current email is always allowed
	if req.Email != "" && req.Email != employee.Email {
		existing, _ := s.employeeRepo.GetByEmail(ctx, req.Email)
		if existing != nil && existing.ID != employeeID {
			logger.WarnContext(ctx, "Employee update failed - email already exists", "email", req.Email)
			return nil, models.ErrEmailTaken
		}
		employee.Email = req.Email
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Role != "" {
		employee.Role = models.Role(req.Role)
	}

	employee.UpdatedAt = time.Now()

	if err := s.employeeRepo.Update(ctx, employeeID, employee); err != nil {
		logger.ErrorContext(ctx, "Failed to update employee", "employee_id", employeeID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Employee updated", "employee_id", employeeID)
	// cached recent tasks embed the owner's name and email
	s.dropStatsCache(ctx)

	return employee, nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error {
	_, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		logger.WarnContext(ctx, "Employee not found for deletion", "employee_id", employeeID)
		return models.ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete employee", "employee_id", employeeID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Employee deleted with owned tasks", "employee_id", employeeID)
	s.dropStatsCache(ctx)

	return nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeServiceImpl) dropStatsCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, DashboardStatsCacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to drop dashboard stats cache", "error", err)
	}
}
