package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Invocation
	FieldArity     = "arity"
	FieldDate      = "date"
	FieldULID      = "ulid"
	FieldTimestamp = "timestamp_ms"
	FieldRows      = "rows"
)
