package history

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeHistory is one materialized lifecycle event, written by the
// Kafka consumer. Append-only.
type EmployeeHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Action     string    `gorm:"size:50;not null"`
	Email      string    `gorm:"size:255"`
	RequestID  string    `gorm:"size:64"`
	OccurredAt time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (EmployeeHistory) TableName() string {
	return "employee_history"
}
