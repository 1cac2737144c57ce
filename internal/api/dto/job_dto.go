package dto

// CreateJobRequest payload. A zero or omitted id is assigned by the store.
type CreateJobRequest struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// UpdateJobRequest is a merge patch: absent fields are left untouched.
type UpdateJobRequest struct {
	Title *string `json:"title"`
}

// JobResponse payload.
type JobResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
