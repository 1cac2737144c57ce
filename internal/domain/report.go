package domain

import "time"

// QuarterlyHires is one row of the hires-per-quarter report: the number of
// employees hired into a department/job pairing during one calendar quarter.
type QuarterlyHires struct {
	DepartmentID int64
	JobID        int64
	Quarter      int
	HiredCount   int
}

// QuarterOf maps a timestamp to its calendar quarter (1-4) using the month
// component as stored, without timezone conversion.
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
