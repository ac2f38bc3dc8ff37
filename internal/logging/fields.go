package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldRule     = "rule"
	FieldDefault  = "default"
	FieldPolicy   = "policy"
	FieldSettings = "settings"
	FieldWarnings = "warnings"
	FieldSources  = "sources"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule listing fields.
	FieldRules       = "rules"
	FieldName        = "name"
	FieldParams      = "params"
	FieldTags        = "tags"
	FieldDescription = "description"
)
