package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "willowy/internal/employee/errors"
	"willowy/internal/events"
	"willowy/internal/media"
	"willowy/internal/messaging/kafka"
	"willowy/internal/shared/apperror"
	"willowy/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest, profile *media.File) error
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, profile *media.File) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	uploader media.Uploader
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, uploader media.Uploader, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, uploader, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	uploader media.Uploader,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		uploader: uploader,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// Create runs the write chain in a fixed order: uniqueness guard, reference
// existence, media resolution, persistence. The first failing step aborts;
// nothing is persisted until every precondition passed.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest, profile *media.File) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department_id", req.DepartmentID),
		zap.String("designation_id", req.DesignationID),
	)

	if err := s.guardUniqueness(ctx, req.Email, req.Mobile, ""); err != nil {
		return err
	}

	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return err
	}
	if err := s.checkDesignation(ctx, req.DesignationID); err != nil {
		return err
	}

	if profile == nil {
		return employeeerrors.ErrProfileRequired
	}
	locator, err := s.uploader.Upload(ctx, profile)
	if err != nil {
		s.logger.Error("create employee upload failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "Profile image upload failed", 502)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:            uuid.New(),
		Name:          req.Name,
		Gender:        req.Gender,
		DOB:           req.DOB,
		Address:       req.Address,
		Mobile:        req.Mobile,
		Email:         req.Email,
		DepartmentID:  uuidPtr(req.DepartmentID),
		DesignationID: uuidPtr(req.DesignationID),
		DOJ:           req.DOJ,
		Profile:       locator,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  events.EmployeeCreatedType,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueLifecycleEvent(ctx, tx, empl.ID.String(), event.EventType, event); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	return ProjectEmployee(*empl), nil
}

// Update re-runs the write chain for the fields actually present. The
// uniqueness guard excludes the record itself, so re-submitting an
// employee's own email succeeds.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest, profile *media.File) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if req.Email != nil || req.Mobile != nil {
		if err := s.guardUniqueness(ctx, strDeref(req.Email), strDeref(req.Mobile), id); err != nil {
			return err
		}
	}

	if req.DepartmentID != nil {
		if err := s.checkDepartment(ctx, *req.DepartmentID); err != nil {
			return err
		}
	}
	if req.DesignationID != nil {
		if err := s.checkDesignation(ctx, *req.DesignationID); err != nil {
			return err
		}
	}

	if profile != nil {
		locator, err := s.uploader.Upload(ctx, profile)
		if err != nil {
			s.logger.Error("update employee upload failed", zap.String("request_id", rid), zap.Error(err))
			return apperror.Wrap(err, apperror.CodeServiceUnavailable, "Profile image upload failed", 502)
		}
		empl.Profile = locator
	}

	applyChanges(empl, req)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeDeletedEvent{
			EventType:  events.EmployeeDeletedType,
			RequestID:  rid,
			EmployeeID: id,
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueLifecycleEvent(ctx, tx, id, event.EventType, event); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// guardUniqueness reports which field a different employee already claims.
// Email collisions win over mobile collisions when both match.
func (s *service) guardUniqueness(ctx context.Context, email, mobile, excludeID string) error {
	existing, err := s.repo.FindConflict(ctx, email, mobile, excludeID)
	if err != nil {
		s.logger.Error("uniqueness check failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if existing == nil {
		return nil
	}
	if email != "" && existing.Email == email {
		return employeeerrors.ErrEmailExists
	}
	return employeeerrors.ErrMobileExists
}

func (s *service) checkDepartment(ctx context.Context, departmentID string) error {
	if uuidPtr(departmentID) == nil {
		return employeeerrors.ErrDepartmentNotFound
	}
	exists, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		s.logger.Error("department existence check failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		return employeeerrors.ErrDepartmentNotFound
	}
	return nil
}

func (s *service) checkDesignation(ctx context.Context, designationID string) error {
	if uuidPtr(designationID) == nil {
		return employeeerrors.ErrDesignationNotFound
	}
	exists, err := s.repo.DesignationExists(ctx, designationID)
	if err != nil {
		s.logger.Error("designation existence check failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		return employeeerrors.ErrDesignationNotFound
	}
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, employeeID, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.Error(err))
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		s.logger.Error("invalid lifecycle event", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("queue lifecycle event failed",
			zap.String("employee_id", employeeID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func applyChanges(empl *Employee, req UpdateEmployeeRequest) {
	if req.Name != nil {
		empl.Name = *req.Name
	}
	if req.Gender != nil {
		empl.Gender = *req.Gender
	}
	if req.DOB != nil {
		empl.DOB = *req.DOB
	}
	if req.Address != nil {
		empl.Address = *req.Address
	}
	if req.Mobile != nil {
		empl.Mobile = *req.Mobile
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.DepartmentID != nil {
		empl.DepartmentID = uuidPtr(*req.DepartmentID)
	}
	if req.DesignationID != nil {
		empl.DesignationID = uuidPtr(*req.DesignationID)
	}
	if req.DOJ != nil {
		empl.DOJ = *req.DOJ
	}
}

func strDeref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
