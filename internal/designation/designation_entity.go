package designation

import (
	"time"

	"github.com/google/uuid"
)

type Designation struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null;uniqueIndex:uq_designations_name_department"`
	Description  string    `gorm:"size:500;not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_designations_name_department"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
