package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDWithRelations(ctx context.Context, id string) (*Employee, error)
	FindConflict(ctx context.Context, email, mobile, excludeID string) (*Employee, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	DesignationExists(ctx context.Context, designationID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByIDWithRelations(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("Department").
		Preload("Designation").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

// FindConflict returns a different employee already claiming the email or
// mobile, or (nil, nil) when both are free. Empty email/mobile arguments are
// skipped; excludeID drops the record being updated from the search.
func (r *repository) FindConflict(ctx context.Context, email, mobile, excludeID string) (*Employee, error) {
	q := r.conn(ctx).Model(&Employee{})

	switch {
	case email != "" && mobile != "":
		q = q.Where("email = ? OR mobile = ?", email, mobile)
	case email != "":
		q = q.Where("email = ?", email)
	case mobile != "":
		q = q.Where("mobile = ?", mobile)
	default:
		return nil, nil
	}

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var empl Employee
	err := q.First(&empl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
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

func (r *repository) DesignationExists(ctx context.Context, designationID string) (bool, error) {
	var id string
	err := r.conn(ctx).
		Table("designations").
		Select("id").
		Where("id = ?", designationID).
		Limit(1).
		Scan(&id).Error
	if err != nil {
		return false, err
	}
	return id != "", nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	// Never persist the preloaded read-only associations.
	return r.conn(ctx).
		Omit("Department", "Designation").
		Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
