// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols give command output a consistent visual language.
const (
	// Success marks a check that found nothing to report or a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a data-quality issue that did not stop the run.
	Warning = "!"

	// Info marks informational lines such as written file paths.
	Info = "i"
)
