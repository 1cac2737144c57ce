package domain

import "time"

// Employee is a hired person assigned to a department and a job.
// DepartmentID and JobID reference existing Department and Job rows.
type Employee struct {
	ID           int64
	Name         string
	HireDatetime time.Time
	DepartmentID int64
	JobID        int64
}
