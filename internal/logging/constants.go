package logging

// Standardized field names for structured logging. Using the same keys across
// packages keeps the log output easy to filter.
const (
	FieldFile       = "file_path"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldKey        = "store_key"
	FieldLabel      = "label"
	FieldSection    = "section"
	FieldCategory   = "category"
	FieldInstrument = "instrument"
	FieldOperation  = "operation"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldError      = "error"
)
