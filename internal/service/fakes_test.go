package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/events"
)

// In-memory repository fakes backing the service tests. Create mimics the
// store's constraint behavior: duplicate ids and dangling references fail.

type fakeDepartmentRepo struct {
	rows map[int64]domain.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{rows: make(map[int64]domain.Department)}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	if _, exists := r.rows[dept.ID]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint %q", "departments_pkey")
	}
	r.rows[dept.ID] = *dept
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	dept, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dept, nil
}

func (r *fakeDepartmentRepo) List(_ context.Context, offset, limit int) ([]domain.Department, error) {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []domain.Department
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, r.rows[ids[i]])
	}
	return result, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	if _, ok := r.rows[dept.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[dept.ID] = *dept
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

type fakeJobRepo struct {
	rows   map[int64]domain.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{rows: make(map[int64]domain.Job), nextID: 1}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	if job.ID == 0 {
		for r.rows[r.nextID].ID != 0 {
			r.nextID++
		}
		job.ID = r.nextID
		r.nextID++
	} else if _, exists := r.rows[job.ID]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint %q", "jobs_pkey")
	}
	r.rows[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	job, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &job, nil
}

func (r *fakeJobRepo) List(_ context.Context, offset, limit int) ([]domain.Job, error) {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []domain.Job
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, r.rows[ids[i]])
	}
	return result, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.rows[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

type fakeEmployeeRepo struct {
	rows        map[int64]domain.Employee
	departments *fakeDepartmentRepo
	jobs        *fakeJobRepo
	listErr     error
}

func newFakeEmployeeRepo(departments *fakeDepartmentRepo, jobs *fakeJobRepo) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		rows:        make(map[int64]domain.Employee),
		departments: departments,
		jobs:        jobs,
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	if _, exists := r.rows[emp.ID]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint %q", "employees_pkey")
	}
	if _, ok := r.departments.rows[emp.DepartmentID]; !ok {
		return fmt.Errorf("insert violates foreign key constraint %q", "employees_department_id_fkey")
	}
	if _, ok := r.jobs.rows[emp.JobID]; !ok {
		return fmt.Errorf("insert violates foreign key constraint %q", "employees_job_id_fkey")
	}
	r.rows[emp.ID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	emp, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, offset, limit int) ([]domain.Employee, error) {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []domain.Employee
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, r.rows[ids[i]])
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	if _, ok := r.rows[emp.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[emp.ID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeEmployeeRepo) ListHiredInYear(_ context.Context, year int) ([]domain.Employee, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []domain.Employee
	for _, emp := range r.rows {
		if emp.HireDatetime.Year() == year {
			result = append(result, emp)
		}
	}
	return result, nil
}

func seedDepartment(id int64) *domain.Department {
	return &domain.Department{ID: id, Name: fmt.Sprintf("department-%d", id)}
}

func seedJob(id int64) *domain.Job {
	return &domain.Job{ID: id, Title: fmt.Sprintf("job-%d", id)}
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
