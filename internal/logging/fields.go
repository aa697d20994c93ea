package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the run identifier.
	FieldRunID = "run_id"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldState is the run state reached when the line was logged.
	FieldState = "state"
	// FieldErrorKind is the error classification of a failed run.
	FieldErrorKind = "error_kind"
)
