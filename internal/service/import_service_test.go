package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/hiring-service/internal/events"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

func newTestImporter(departments *fakeDepartmentRepo, jobs *fakeJobRepo, employees *fakeEmployeeRepo, dispatcher events.Dispatcher) *ImportService {
	return NewImportService(ImportDependencies{
		DepartmentRepo: departments,
		JobRepo:        jobs,
		EmployeeRepo:   employees,
		Dispatcher:     dispatcher,
		Logger:         zap.NewNop(),
	})
}

func TestImportDepartmentsCountsDuplicateAsFailure(t *testing.T) {
	departments := newFakeDepartmentRepo()
	jobs := newFakeJobRepo()
	employees := newFakeEmployeeRepo(departments, jobs)
	importer := newTestImporter(departments, jobs, employees, nil)

	if err := departments.Create(context.Background(), seedDepartment(2)); err != nil {
		t.Fatalf("seed department: %v", err)
	}

	csv := "1,Engineering\n2,Finance\n3,Marketing\n"
	summary, err := importer.ImportDepartments(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportDepartments: %v", err)
	}
	if summary.Successful != 2 || summary.Failed != 1 {
		t.Fatalf("got %d/%d successful/failed, want 2/1", summary.Successful, summary.Failed)
	}

	for _, id := range []int64{1, 3} {
		if _, err := departments.GetByID(context.Background(), id); err != nil {
			t.Errorf("department %d not retrievable after import: %v", id, err)
		}
	}
}

func TestImportEmployeesSkipsBadRows(t *testing.T) {
	departments := newFakeDepartmentRepo()
	jobs := newFakeJobRepo()
	employees := newFakeEmployeeRepo(departments, jobs)
	importer := newTestImporter(departments, jobs, employees, nil)

	seedOrg(t, departments, jobs)

	rows := []string{
		"1,Alice,2021-02-01T09:00:00Z,1,1",  // valid
		"2,Bob,not-a-date,1,1",              // bad timestamp
		"x,Carol,2021-03-01T09:00:00Z,1,1",  // bad id
		"4,Dave,2021-03-02T09:00:00Z,99,1",  // dangling department reference
		"5,Eve,2021-03-03T09:00:00Z",        // wrong arity
		"1,Frank,2021-04-01T09:00:00Z,1,1",  // duplicate id
		"6,Grace,2021-05-01 10:30:00,1,1",   // valid, space-separated layout
	}
	csv := strings.Join(rows, "\n") + "\n"

	summary, err := importer.ImportEmployees(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportEmployees: %v", err)
	}
	if summary.Successful != 2 || summary.Failed != 5 {
		t.Fatalf("got %d/%d successful/failed, want 2/5", summary.Successful, summary.Failed)
	}

	emp, err := employees.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("employee 1 not retrievable: %v", err)
	}
	if emp.Name != "Alice" {
		t.Errorf("duplicate row overwrote employee 1: got name %q", emp.Name)
	}
}

func TestImportDependencyRowVisibleToLaterRow(t *testing.T) {
	departments := newFakeDepartmentRepo()
	jobs := newFakeJobRepo()
	employees := newFakeEmployeeRepo(departments, jobs)
	importer := newTestImporter(departments, jobs, employees, nil)

	// departments imported first are visible to employee rows in a later batch
	if _, err := importer.ImportDepartments(context.Background(), strings.NewReader("1,Engineering\n")); err != nil {
		t.Fatalf("ImportDepartments: %v", err)
	}
	if _, err := importer.ImportJobs(context.Background(), strings.NewReader("1,Developer\n")); err != nil {
		t.Fatalf("ImportJobs: %v", err)
	}

	summary, err := importer.ImportEmployees(context.Background(), strings.NewReader("1,Alice,2021-02-01T09:00:00Z,1,1\n"))
	if err != nil {
		t.Fatalf("ImportEmployees: %v", err)
	}
	if summary.Successful != 1 || summary.Failed != 0 {
		t.Fatalf("got %d/%d successful/failed, want 1/0", summary.Successful, summary.Failed)
	}
}

func TestImportMalformedStreamIsFatal(t *testing.T) {
	departments := newFakeDepartmentRepo()
	jobs := newFakeJobRepo()
	employees := newFakeEmployeeRepo(departments, jobs)
	importer := newTestImporter(departments, jobs, employees, nil)

	_, err := importer.ImportDepartments(context.Background(), strings.NewReader("1,\"unterminated\n2,Finance\n"))
	if err == nil {
		t.Fatal("expected fatal error for malformed stream")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Code != "IMPORT_FAILED" {
		t.Errorf("got code %q, want IMPORT_FAILED", domainErr.Code)
	}
	if len(departments.rows) != 0 {
		t.Errorf("no rows should be inserted on fatal parse failure, got %d", len(departments.rows))
	}
}

func TestImportPublishesCompletionEvent(t *testing.T) {
	departments := newFakeDepartmentRepo()
	jobs := newFakeJobRepo()
	employees := newFakeEmployeeRepo(departments, jobs)
	dispatcher := &recordingDispatcher{}
	importer := newTestImporter(departments, jobs, employees, dispatcher)

	if _, err := importer.ImportJobs(context.Background(), strings.NewReader("1,Developer\n1,Analyst\n")); err != nil {
		t.Fatalf("ImportJobs: %v", err)
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("got %d events, want 1", len(dispatcher.published))
	}
	event := dispatcher.published[0]
	if event.Type != events.EventImportCompleted {
		t.Fatalf("got event type %q, want %q", event.Type, events.EventImportCompleted)
	}
	payload, ok := event.Payload.(events.ImportCompletedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload.Entity != "jobs" || payload.Successful != 1 || payload.Failed != 1 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func seedOrg(t *testing.T, departments *fakeDepartmentRepo, jobs *fakeJobRepo) {
	t.Helper()
	if err := departments.Create(context.Background(), seedDepartment(1)); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	if err := jobs.Create(context.Background(), seedJob(1)); err != nil {
		t.Fatalf("seed job: %v", err)
	}
}
