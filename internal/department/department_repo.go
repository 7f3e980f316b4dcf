package department

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByNameFold(ctx context.Context, name string) (*Department, error)
	Delete(ctx context.Context, id string) error
	DeleteDesignationsByDepartment(ctx context.Context, departmentID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn routes the statement through the attached transaction when one is
// present; otherwise it runs on the pool.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.conn(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

// FindByNameFold matches the name case-insensitively. Returns (nil, nil)
// when no department claims the name.
func (r *repository) FindByNameFold(ctx context.Context, name string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&dept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).
		Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) DeleteDesignationsByDepartment(ctx context.Context, departmentID string) error {
	return r.conn(ctx).
		Exec("DELETE FROM designations WHERE department_id = ?", departmentID).Error
}
