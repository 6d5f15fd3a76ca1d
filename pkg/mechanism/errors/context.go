package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// DefaultContextLines is the number of lines shown before and after an error.
const DefaultContextLines = 2

// ExtractContext extracts the lines of source surrounding location and
// formats them with line numbers and a column marker.
func ExtractContext(source []byte, location types.Location, contextLines int) string {
	if !location.IsValid() || len(source) == 0 {
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(source))
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	errorLine := location.Line - 1
	if errorLine >= len(lines) {
		return ""
	}
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	width := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, width, i+1, lines[i]))

		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", width), padding))
		}
	}

	return sb.String()
}

// WithContext fills err.Context from source.
func WithContext(err *Error, source []byte, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(source, err.Location, contextLines)
	}
	return err
}

// AddContext enriches every error of the list with source context.
func (el *ErrorList) AddContext(source []byte) {
	for _, err := range el.Errors {
		WithContext(err, source, DefaultContextLines)
	}
}
