package app

import (
	"willowy/internal/department"
	"willowy/internal/designation"
	"willowy/internal/employee"
	"willowy/internal/history"

	"gorm.io/gorm"
)

// migrateSchema creates the tables plus the unique indexes the services
// rely on as the authoritative conflict check.
func migrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&department.Department{},
		&designation.Designation{},
		&employee.Employee{},
		&history.EmployeeHistory{},
	); err != nil {
		return err
	}

	statements := []string{
		// Department names are unique ignoring case
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_departments_name_ci ON departments (LOWER(name))`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id VARCHAR(64),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id UUID NOT NULL,
			event_type VARCHAR(50) NOT NULL,
			topic VARCHAR(255) NOT NULL,
			payload JSONB NOT NULL,
			status VARCHAR(20) NOT NULL,
			retry_count INT NOT NULL DEFAULT 0,
			error_message VARCHAR(512),
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, created_at)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
