package logger

// ErrorEntry exposes errorEntry for white-box tests.
type ErrorEntry = errorEntry

// Exported for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
