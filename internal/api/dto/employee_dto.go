package dto

import "time"

// CreateEmployeeRequest payload. The id is supplied by the caller and the
// department/job references must exist.
type CreateEmployeeRequest struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	HireDatetime time.Time `json:"hire_datetime"`
	DepartmentID int64     `json:"department_id"`
	JobID        int64     `json:"job_id"`
}

// UpdateEmployeeRequest is a merge patch: absent fields are left untouched.
type UpdateEmployeeRequest struct {
	Name         *string    `json:"name"`
	HireDatetime *time.Time `json:"hire_datetime"`
	DepartmentID *int64     `json:"department_id"`
	JobID        *int64     `json:"job_id"`
}

// EmployeeResponse payload.
type EmployeeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	HireDatetime time.Time `json:"hire_datetime"`
	DepartmentID int64     `json:"department_id"`
	JobID        int64     `json:"job_id"`
}

// QuarterlyHiresResponse is one row of the hires-per-quarter report.
type QuarterlyHiresResponse struct {
	DepartmentID int64 `json:"department_id"`
	JobID        int64 `json:"job_id"`
	Quarter      int   `json:"quarter"`
	HiredCount   int   `json:"hired_count"`
}
