package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventImportCompleted EventType = "import_completed"
	EventReportGenerated EventType = "report_generated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ImportCompletedPayload carries the outcome of one bulk import batch.
type ImportCompletedPayload struct {
	Entity     string `json:"entity"`
	Successful int    `json:"successful_imports"`
	Failed     int    `json:"failed_imports"`
}

// ReportGeneratedPayload describes a hires-per-quarter report run.
type ReportGeneratedPayload struct {
	Year     int `json:"year"`
	RowCount int `json:"row_count"`
}
