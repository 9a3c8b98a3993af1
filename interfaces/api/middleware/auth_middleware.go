package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// AuthMiddleware verifies bearer tokens and resolves the subject against
// the employees table on every request. There is no cached session: a
// deleted employee's tokens stop working on the very next request.
type AuthMiddleware struct {
	employeeRepo repositories.EmployeeRepository
	jwtSecret    string
}

func NewAuthMiddleware(employeeRepo repositories.EmployeeRepository, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		employeeRepo: employeeRepo,
		jwtSecret:    jwtSecret,
	}
}

// Protected validates the token and attaches the authenticated identity.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}

		// expiry, tampering and malformed tokens are logged apart but
		// collapse into one client-facing error
		employeeID, err := utils.ValidateToken(token, m.jwtSecret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "reason", err)
			return utils.UnauthorizedResponse(c, "Invalid or expired token")
		}

		employee, err := m.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			logger.WarnContext(ctx, "Token subject no longer exists", "employee_id", employeeID)
			return utils.UnauthorizedResponse(c, "User not found")
		}

		c.Locals("employee", &utils.EmployeeContext{
			ID:    employee.ID,
			Name:  employee.Name,
			Email: employee.Email,
			Role:  employee.Role,
		})

		return c.Next()
	}
}

// RequireAdmin allows ADMIN only. It assumes Protected has already run.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, err := utils.GetEmployeeFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		if employee.Role != models.RoleAdmin {
			return utils.ForbiddenResponse(c, "Admin access required")
		}

		return c.Next()
	}
}

// RequireManagerOrAdmin allows MANAGER and ADMIN. It assumes Protected
// has already run.
func RequireManagerOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, err := utils.GetEmployeeFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		if employee.Role != models.RoleManager && employee.Role != models.RoleAdmin {
			return utils.ForbiddenResponse(c, "Manager or Admin access required")
		}

		return c.Next()
	}
}
