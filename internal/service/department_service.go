package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/repository"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// DepartmentPatch carries the fields of a merge-patch update. Nil fields are
// left untouched on the stored row.
type DepartmentPatch struct {
	Name *string
}

// DepartmentService owns department CRUD and its error wrapping.
type DepartmentService struct {
	departments repository.DepartmentRepository
}

// NewDepartmentService constructs the service.
func NewDepartmentService(departments repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// Create persists a new department.
func (s *DepartmentService) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error creating department %d", dept.ID), err)
	}
	return dept, nil
}

// GetByID fetches a department by id.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error fetching department %d", id), err)
	}
	return dept, nil
}

// List returns a page of departments in id order.
func (s *DepartmentService) List(ctx context.Context, offset, limit int) ([]domain.Department, error) {
	offset, limit = normalizePage(offset, limit)
	depts, err := s.departments.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.NewOperationFailed("error listing departments", err)
	}
	return depts, nil
}

// Update applies a merge patch over the stored row.
func (s *DepartmentService) Update(ctx context.Context, id int64, patch DepartmentPatch) (*domain.Department, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		dept.Name = *patch.Name
	}
	if err := s.departments.Update(ctx, dept); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error updating department %d", id), err)
	}
	return dept, nil
}

// Delete removes the department with the given id.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return apperrors.NewOperationFailed(fmt.Sprintf("error deleting department %d", id), err)
	}
	return nil
}

// normalizePage applies the default offset/limit window. The limit itself is
// trusted as supplied.
func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return offset, limit
}
