package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type EmployeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) repositories.EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at DESC")
		}).
		Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, id uuid.UUID, employee *models.Employee) error {
	return r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).
		Select("name", "email", "role", "updated_at").
		Updates(employee).Error
}

func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// owned tasks go with the employee via the FK cascade
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{}).Error
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*models.Employee, error) {
	// task counts come from a subquery, no point materializing every task
	var employees []*models.Employee
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Select("employees.*, (SELECT COUNT(*) FROM tasks WHERE tasks.employee_id = employees.id) AS task_count").
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error
	return count, err
}
