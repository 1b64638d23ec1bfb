package logging

// Field names shared across the application's log output. Reusing the same
// keys keeps the logs filterable once they leave the process.
const (
	FieldFile       = "file_path"
	FieldRow        = "row"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldKept       = "kept"
	FieldDropped    = "dropped"
	FieldReason     = "reason"
	FieldFormat     = "format"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDirectory  = "directory"
	FieldRulesFile  = "rules_file"
)
