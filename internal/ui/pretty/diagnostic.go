package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlconf/internal/configloader"
)

// FormatViolation formats a single schema violation for terminal output.
// Layout: `  severity  field  message  (expected ...)`.
func (s *Styles) FormatViolation(v configloader.Violation, severity string) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(s.FormatSeverity(severity))

	if v.Field != "" {
		builder.WriteString("  ")
		builder.WriteString(s.Field.Render(v.Field))
	}

	builder.WriteString("  ")
	builder.WriteString(s.Message.Render(v.Message))

	if v.Expected != "" {
		builder.WriteString("  ")
		builder.WriteString(s.Expected.Render("(expected " + v.Expected + ")"))
	}

	builder.WriteString("\n")
	return builder.String()
}

// FormatSchemaError renders every violation of a schema error, one per line,
// preceded by the offending file path when known.
func (s *Styles) FormatSchemaError(err *configloader.SchemaError) string {
	var builder strings.Builder

	header := "invalid configuration"
	if err.Path != "" {
		header = s.FilePath.Render(err.Path) + ": invalid configuration"
	}
	fmt.Fprintf(&builder, "%s (%d problem(s))\n", header, len(err.Violations))

	for _, v := range err.Violations {
		builder.WriteString(s.FormatViolation(v, "error"))
	}
	return builder.String()
}

// FormatSeverity returns a styled severity marker.
func (s *Styles) FormatSeverity(severity string) string {
	switch severity {
	case "error":
		return s.Error.Render("error")
	case "warning":
		return s.Warning.Render("warning")
	default:
		return s.Dim.Render(severity)
	}
}
