package logging

// LogEntry represents a structured log record with fields relevant to
// experiment runs.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Experiment-specific fields
	RunID string // Identifier of the experiment run that emitted the entry

	// General structured data
	Fields map[string]interface{}
}
