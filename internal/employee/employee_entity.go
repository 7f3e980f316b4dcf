package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"size:20;not null"`
	Gender        string     `gorm:"size:20;not null"`
	DOB           string     `gorm:"size:10;not null"`
	Address       string     `gorm:"size:50;not null"`
	Mobile        string     `gorm:"size:20;not null;uniqueIndex:uq_employees_mobile"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:uq_employees_email"`
	DepartmentID  *uuid.UUID `gorm:"type:uuid"`
	DesignationID *uuid.UUID `gorm:"type:uuid"`
	DOJ           string     `gorm:"size:25;not null"`
	Profile       string     `gorm:"size:500;not null"`

	// Read-only associations, populated only on the detail read path.
	// No FK constraints back them: a cascading department delete leaves
	// employee references dangling.
	Department  *EmployeeDepartment  `gorm:"foreignKey:DepartmentID;references:ID"`
	Designation *EmployeeDesignation `gorm:"foreignKey:DesignationID;references:ID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeeDesignation struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDesignation) TableName() string {
	return "designations"
}
