package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/events"
	"github.com/spec-kit/hiring-service/internal/repository"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// Column layouts of the headerless CSV streams, in positional order.
const (
	departmentColumns = 2 // id, name
	jobColumns        = 2 // id, title
	employeeColumns   = 5 // id, name, hire_datetime, department_id, job_id
)

var hireDatetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ImportSummary reports the per-row outcome counts of one batch.
type ImportSummary struct {
	Successful int
	Failed     int
}

// ImportDependencies bundles repositories for the importer.
type ImportDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	JobRepo        repository.JobRepository
	EmployeeRepo   repository.EmployeeRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// ImportService loads headerless CSV streams row by row. A bad row is counted
// and skipped; it never aborts the batch. Only a stream that cannot be parsed
// at all fails the whole request.
type ImportService struct {
	departments repository.DepartmentRepository
	jobs        repository.JobRepository
	employees   repository.EmployeeRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewImportService constructs the importer.
func NewImportService(deps ImportDependencies) *ImportService {
	return &ImportService{
		departments: deps.DepartmentRepo,
		jobs:        deps.JobRepo,
		employees:   deps.EmployeeRepo,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// ImportDepartments loads a department CSV stream (columns: id, name).
func (s *ImportService) ImportDepartments(ctx context.Context, r io.Reader) (ImportSummary, error) {
	return s.runImport(ctx, r, "departments", func(ctx context.Context, fields []string) error {
		dept, err := departmentFromRow(fields)
		if err != nil {
			return err
		}
		return s.departments.Create(ctx, dept)
	})
}

// ImportJobs loads a job CSV stream (columns: id, title).
func (s *ImportService) ImportJobs(ctx context.Context, r io.Reader) (ImportSummary, error) {
	return s.runImport(ctx, r, "jobs", func(ctx context.Context, fields []string) error {
		job, err := jobFromRow(fields)
		if err != nil {
			return err
		}
		return s.jobs.Create(ctx, job)
	})
}

// ImportEmployees loads an employee CSV stream
// (columns: id, name, hire_datetime, department_id, job_id).
func (s *ImportService) ImportEmployees(ctx context.Context, r io.Reader) (ImportSummary, error) {
	return s.runImport(ctx, r, "employees", func(ctx context.Context, fields []string) error {
		emp, err := employeeFromRow(fields)
		if err != nil {
			return err
		}
		return s.employees.Create(ctx, emp)
	})
}

func (s *ImportService) runImport(ctx context.Context, r io.Reader, entity string, insertRow func(context.Context, []string) error) (ImportSummary, error) {
	reader := csv.NewReader(r)
	// arity is validated per row so a short or long row fails alone
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ImportSummary{}, apperrors.NewImportError(fmt.Sprintf("cannot parse %s csv stream", entity), err)
	}

	var summary ImportSummary
	for i, fields := range records {
		if err := insertRow(ctx, fields); err != nil {
			summary.Failed++
			s.logger.Debug("import row failed",
				zap.String("entity", entity),
				zap.Int("row", i),
				zap.Error(err),
			)
			continue
		}
		summary.Successful++
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventImportCompleted,
			Timestamp: time.Now().UTC(),
			Payload: events.ImportCompletedPayload{
				Entity:     entity,
				Successful: summary.Successful,
				Failed:     summary.Failed,
			},
		})
	}

	return summary, nil
}

func departmentFromRow(fields []string) (*domain.Department, error) {
	if len(fields) != departmentColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", departmentColumns, len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid department id %q: %w", fields[0], err)
	}
	return &domain.Department{ID: id, Name: strings.TrimSpace(fields[1])}, nil
}

func jobFromRow(fields []string) (*domain.Job, error) {
	if len(fields) != jobColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", jobColumns, len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", fields[0], err)
	}
	return &domain.Job{ID: id, Title: strings.TrimSpace(fields[1])}, nil
}

func employeeFromRow(fields []string) (*domain.Employee, error) {
	if len(fields) != employeeColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", employeeColumns, len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", fields[0], err)
	}
	hiredAt, err := parseHireDatetime(fields[2])
	if err != nil {
		return nil, err
	}
	departmentID, err := parseID(fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid department id %q: %w", fields[3], err)
	}
	jobID, err := parseID(fields[4])
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", fields[4], err)
	}
	return &domain.Employee{
		ID:           id,
		Name:         strings.TrimSpace(fields[1]),
		HireDatetime: hiredAt,
		DepartmentID: departmentID,
		JobID:        jobID,
	}, nil
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func parseHireDatetime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range hireDatetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid hire_datetime %q", raw)
}
