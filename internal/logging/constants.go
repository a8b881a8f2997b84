package logging

// Standard field names for structured log entries.
const (
	FieldFile      = "file_path"
	FieldExpenseID = "expense_id"
	FieldLine      = "line"
	FieldCategory  = "category"
	FieldPeriod    = "period"
	FieldRange     = "date_range"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldLegacy    = "legacy_escape"
)
