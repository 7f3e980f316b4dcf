package designation

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	designationerrors "willowy/internal/designation/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DesignationByDepartmentPrefix = "designations:department:"

func GetDesignationByDepartmentKey(departmentID string) string {
	return DesignationByDepartmentPrefix + departmentID
}

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) error
	GetAllByDepartment(ctx context.Context, departmentID string) ([]DesignationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreateDesignationRequest) error {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return designationerrors.ErrDepartmentNotFound
	}

	exists, err := s.repo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !exists {
		return designationerrors.ErrDepartmentNotFound
	}

	name := strings.TrimSpace(req.Name)

	claimed, err := s.repo.FindByNameAndDepartment(ctx, name, req.DepartmentID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if claimed != nil {
		return designationerrors.ErrDesignationExists
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig := &Designation{
		ID:           uuid.New(),
		Name:         name,
		Description:  strings.TrimSpace(req.Description),
		DepartmentID: departmentID,
	}

	if err := qtx.Create(ctx, desig); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, req.DepartmentID)

	return nil
}

func (s *service) GetAllByDepartment(ctx context.Context, departmentID string) ([]DesignationResponse, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, designationerrors.ErrDepartmentNotFound
	}

	exists, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !exists {
		return nil, designationerrors.ErrDepartmentNotFound
	}

	cacheKey := GetDesignationByDepartmentKey(departmentID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []DesignationResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		desigs, err := s.repo.FindAllByDepartment(ctx, departmentID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(desigs)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(jsonData), 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]DesignationResponse), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return designationerrors.ErrDesignationNotFound
	}

	desig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, desig.DepartmentID.String())

	return nil
}

func (s *service) invalidateCache(ctx context.Context, departmentID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetDesignationByDepartmentKey(departmentID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		zap.L().Named("designation.service").Error("failed to invalidate designation cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(desig Designation) DesignationResponse {
	resp := DesignationResponse{
		ID:           desig.ID.String(),
		Name:         desig.Name,
		Description:  desig.Description,
		DepartmentID: desig.DepartmentID.String(),
	}
	if !desig.CreatedAt.IsZero() {
		resp.CreatedAt = desig.CreatedAt.Format(time.RFC3339)
	}
	if !desig.UpdatedAt.IsZero() {
		resp.UpdatedAt = desig.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(desigs []Designation) []DesignationResponse {
	res := make([]DesignationResponse, len(desigs))
	for i, d := range desigs {
		res[i] = mapToResponse(d)
	}
	return res
}
