package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskhub/domain/models"
	"taskhub/infrastructure/postgres"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
)

// Seeds the database with demo accounts and sample tasks.
// Existing tasks and employees are wiped first.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: "text",
		Output: "stdout",
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting seed...")

	// Clear existing data (tasks first, FK on employee)
	if err := db.Exec("DELETE FROM tasks").Error; err != nil {
		logger.Error("Failed to clear tasks", "error", err)
		os.Exit(1)
	}
	if err := db.Exec("DELETE FROM employees").Error; err != nil {
		logger.Error("Failed to clear employees", "error", err)
		os.Exit(1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash default password", "error", err)
		os.Exit(1)
	}
	defaultPassword := string(hashed)

	employees := []models.Employee{
		{Name: "Admin User", Email: "admin@company.com", Password: defaultPassword, Role: models.RoleAdmin},
		{Name: "Jane Smith", Email: "jane.smith@company.com", Password: defaultPassword, Role: models.RoleManager},
		{Name: "Bob Johnson", Email: "bob.johnson@company.com", Password: defaultPassword, Role: models.RoleUser},
	}
	for i := range employees {
		if err := db.Create(&employees[i]).Error; err != nil {
			logger.Error("Failed to create employee", "email", employees[i].Email, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("Created employees", "count", len(employees))

	fmt.Println("Login credentials:")
	fmt.Println("  Admin: admin@company.com / password123")
	fmt.Println("  Manager: jane.smith@company.com / password123")
	fmt.Println("  User: bob.johnson@company.com / password123")

	tasks := []models.Task{
		{
			Title:       "Complete Q4 Sales Report",
			Description: "Analyze sales data and prepare comprehensive report for stakeholders",
			Status:      models.StatusInProgress,
			DueDate:     dateOf(2025, time.December, 15),
			EmployeeID:  employees[0].ID,
		},
		{
			Title:       "Update Employee Handbook",
			Description: "Review and update company policies in the employee handbook",
			Status:      models.StatusTodo,
			DueDate:     dateOf(2025, time.December, 20),
			EmployeeID:  employees[1].ID,
		},
		{
			Title:       "Fix Bug in Payment Module",
			Description: "Investigate and resolve the payment processing error reported by users",
			Status:      models.StatusDone,
			DueDate:     dateOf(2025, time.November, 25),
			EmployeeID:  employees[2].ID,
		},
		{
			Title:       "Prepare Year-End Budget",
			Description: "Create detailed budget projection for next fiscal year",
			Status:      models.StatusTodo,
			DueDate:     dateOf(2025, time.December, 30),
			EmployeeID:  employees[0].ID,
		},
		{
			Title:       "Conduct Team Training Session",
			Description: "Organize and deliver training on new project management software",
			Status:      models.StatusInProgress,
			DueDate:     dateOf(2025, time.December, 10),
			EmployeeID:  employees[1].ID,
		},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			logger.Error("Failed to create task", "title", tasks[i].Title, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("Created tasks", "count", len(tasks))

	logger.Info("Seed completed successfully!")
}

func dateOf(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
