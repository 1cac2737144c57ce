package dto

// CreateDepartmentRequest payload. The id is supplied by the caller.
type CreateDepartmentRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpdateDepartmentRequest is a merge patch: absent fields are left untouched.
type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
}

// DepartmentResponse payload.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
