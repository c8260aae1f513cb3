package logging

// LogEntry represents a structured log record.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// RunID identifies the optimizer run the entry belongs to, when one is
	// carried in the context.
	RunID string

	// General structured data
	Fields map[string]interface{}
}
