package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type AuthServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(employeeRepo repositories.EmployeeRepository, jwtSecret string, tokenTTL time.Duration) services.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.Employee, error) {
	existing, _ := s.employeeRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		logger.WarnContext(ctx, "Registration failed - email already exists", "email", req.Email)
		return "", nil, models.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	employee := &models.Employee{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		logger.ErrorContext(ctx, "Failed to create employee", "email", req.Email, "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateToken(employee, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "employee_id", employee.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "Employee registered", "employee_id", employee.ID, "email", employee.Email, "role", employee.Role)

	return token, employee, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.Employee, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return "", nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "employee_id", employee.ID)
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(employee, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "employee_id", employee.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "Employee logged in", "employee_id", employee.ID, "email", employee.Email)

	return token, employee, nil
}

func (s *AuthServiceImpl) GetCurrentEmployee(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, models.ErrEmployeeNotFound
	}
	return employee, nil
}
