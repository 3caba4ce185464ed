package app

// Output format constants for list-style commands.
const (
	// FormatJSON prints results as indented JSON.
	FormatJSON = "json"
	// FormatText renders results as a table.
	FormatText = "text"
)
