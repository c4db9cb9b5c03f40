package logging

const (
	// FieldComponent identifies the subsystem emitting a record.
	FieldComponent = "component"

	// FieldRequestID correlates every record of one retrieval run.
	FieldRequestID = "request_id"

	// FieldEventType tags notable lifecycle events for filtering.
	FieldEventType = "event_type"
)
