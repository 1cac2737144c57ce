package domain

// Job represents a position an employee can be hired into.
type Job struct {
	ID    int64
	Title string
}
