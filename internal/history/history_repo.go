package history

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *EmployeeHistory) error
	FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeHistory, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *EmployeeHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeHistory, error) {
	var entries []EmployeeHistory
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}
