package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/events"
	"github.com/spec-kit/hiring-service/internal/repository"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// EmployeePatch carries the fields of a merge-patch update. Nil fields are
// left untouched on the stored row.
type EmployeePatch struct {
	Name         *string
	HireDatetime *time.Time
	DepartmentID *int64
	JobID        *int64
}

// EmployeeService owns employee CRUD and the hires-per-quarter report.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{employees: employees, dispatcher: dispatcher}
}

// Create persists a new employee. The store rejects rows whose department or
// job reference does not exist.
func (s *EmployeeService) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error creating employee %d", emp.ID), err)
	}
	return emp, nil
}

// GetByID fetches an employee by id.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error fetching employee %d", id), err)
	}
	return emp, nil
}

// List returns a page of employees in id order.
func (s *EmployeeService) List(ctx context.Context, offset, limit int) ([]domain.Employee, error) {
	offset, limit = normalizePage(offset, limit)
	emps, err := s.employees.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.NewOperationFailed("error listing employees", err)
	}
	return emps, nil
}

// Update applies a merge patch over the stored row.
func (s *EmployeeService) Update(ctx context.Context, id int64, patch EmployeePatch) (*domain.Employee, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.HireDatetime != nil {
		emp.HireDatetime = *patch.HireDatetime
	}
	if patch.DepartmentID != nil {
		emp.DepartmentID = *patch.DepartmentID
	}
	if patch.JobID != nil {
		emp.JobID = *patch.JobID
	}
	if err := s.employees.Update(ctx, emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error updating employee %d", id), err)
	}
	return emp, nil
}

// Delete removes the employee with the given id.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.NewOperationFailed(fmt.Sprintf("error deleting employee %d", id), err)
	}
	return nil
}

// HiresByQuarter counts employees hired in the given year, grouped by
// department, job and calendar quarter. Groups without hires are omitted and
// results are sorted by department id, job id, then quarter.
func (s *EmployeeService) HiresByQuarter(ctx context.Context, year int) ([]domain.QuarterlyHires, error) {
	emps, err := s.employees.ListHiredInYear(ctx, year)
	if err != nil {
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error retrieving hiring statistics for %d", year), err)
	}

	type groupKey struct {
		departmentID int64
		jobID        int64
		quarter      int
	}
	counts := make(map[groupKey]int)
	for _, emp := range emps {
		key := groupKey{
			departmentID: emp.DepartmentID,
			jobID:        emp.JobID,
			quarter:      domain.QuarterOf(emp.HireDatetime),
		}
		counts[key]++
	}

	report := make([]domain.QuarterlyHires, 0, len(counts))
	for key, count := range counts {
		report = append(report, domain.QuarterlyHires{
			DepartmentID: key.departmentID,
			JobID:        key.jobID,
			Quarter:      key.quarter,
			HiredCount:   count,
		})
	}
	sort.Slice(report, func(i, j int) bool {
		a, b := report[i], report[j]
		if a.DepartmentID != b.DepartmentID {
			return a.DepartmentID < b.DepartmentID
		}
		if a.JobID != b.JobID {
			return a.JobID < b.JobID
		}
		return a.Quarter < b.Quarter
	})

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReportGenerated,
			Timestamp: time.Now().UTC(),
			Payload:   events.ReportGeneratedPayload{Year: year, RowCount: len(report)},
		})
	}

	return report, nil
}
