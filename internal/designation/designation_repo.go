package designation

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, desig *Designation) error
	FindByID(ctx context.Context, id string) (*Designation, error)
	FindByNameAndDepartment(ctx context.Context, name, departmentID string) (*Designation, error)
	FindAllByDepartment(ctx context.Context, departmentID string) ([]Designation, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, desig *Designation) error {
	return r.conn(ctx).Create(desig).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Designation, error) {
	var desig Designation
	err := r.conn(ctx).
		First(&desig, "id = ?", id).Error
	return &desig, err
}

// FindByNameAndDepartment returns (nil, nil) when the (name, department)
// pair is unclaimed.
func (r *repository) FindByNameAndDepartment(ctx context.Context, name, departmentID string) (*Designation, error) {
	var desig Designation
	err := r.conn(ctx).
		Where("name = ?", name).
		Where("department_id = ?", departmentID).
		First(&desig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

func (r *repository) FindAllByDepartment(ctx context.Context, departmentID string) ([]Designation, error) {
	var desigs []Designation
	err := r.conn(ctx).
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&desigs).Error
	return desigs, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var id string
	err := r.conn(ctx).
		Table("departments").
		Select("id").
		Where("id = ?", departmentID).
		Limit(1).
		Scan(&id).Error
	if err != nil {
		return false, err
	}
	return id != "", nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).
		Delete(&Designation{}, "id = ?", id).Error
}
