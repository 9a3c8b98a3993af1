package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("Employee").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	// explicit column list so cleared fields (empty description, null
	// due date) are written instead of skipped as zero values
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).
		Select("title", "description", "status", "due_date", "employee_id", "updated_at").
		Updates(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	query := r.db.WithContext(ctx).Preload("Employee").Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != uuid.Nil {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}

	var tasks []*models.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", asOf, models.StatusDone).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context, status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
