package types

import "fmt"

// Location is the position of a document node in its source.
// Line and Column are 1-based, as reported by the YAML decoder.
type Location struct {
	File   string // Path to the configuration file, empty for in-memory documents
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns "file:line:column", or "line:column" when no file is known.
func (l Location) String() string {
	switch {
	case l.File != "" && l.Line > 0:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	case l.File != "":
		return l.File
	case l.Line > 0:
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	default:
		return "<unknown>"
	}
}

// IsValid returns true if the location points at a line.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// WithFile returns a copy of the location attributed to file.
func (l Location) WithFile(file string) Location {
	l.File = file
	return l
}
