package errors

import (
	"fmt"
	"strings"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Error is a single defect found while parsing a mechanism document.
type Error struct {
	Kind       Kind           // Category of the defect
	Message    string         // Human-readable description
	Location   types.Location // Source location (file, line, column)
	Context    string         // Surrounding source lines (optional)
	Suggestion string         // Suggested fix (optional)
}

// New creates an error of the given kind.
func New(kind Kind, location types.Location, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Kind, e.Message))

	if e.Location.IsValid() || e.Location.File != "" {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// Short returns "location: [kind] message" on one line.
func (e *Error) Short() string {
	if e.Location.IsValid() || e.Location.File != "" {
		return fmt.Sprintf("%s: [%s] %s", e.Location, e.Kind, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// ErrorList accumulates every defect found during a parse. Components append
// to a shared list instead of returning on the first failure.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list. Nil errors are ignored.
func (el *ErrorList) Add(err *Error) {
	if err == nil {
		return
	}
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error.
func (el *ErrorList) AddError(kind Kind, message string, location types.Location) {
	el.Add(&Error{
		Kind:     kind,
		Message:  message,
		Location: location,
	})
}

// Addf creates and adds a new error with a formatted message.
func (el *ErrorList) Addf(kind Kind, location types.Location, format string, args ...any) {
	el.Add(New(kind, location, format, args...))
}

// AddErrorWithSuggestion creates and adds a new error with a suggestion.
func (el *ErrorList) AddErrorWithSuggestion(kind Kind, message string, location types.Location, suggestion string) {
	el.Add(&Error{
		Kind:       kind,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// Merge appends every error of other, preserving order.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.Errors = append(el.Errors, other.Errors...)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return el != nil && len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	if el == nil {
		return 0
	}
	return len(el.Errors)
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByKind returns all errors of the given kind.
func (el *ErrorList) ByKind(kind Kind) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one error of the given kind.
func (el *ErrorList) HasKind(kind Kind) bool {
	for _, err := range el.Errors {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// CountKind returns the number of errors of the given kind.
func (el *ErrorList) CountKind(kind Kind) int {
	return len(el.ByKind(kind))
}

// KindCounts returns the number of errors per kind.
func (el *ErrorList) KindCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, err := range el.Errors {
		counts[err.Kind]++
	}
	return counts
}

// AttributeTo sets the file of every error location that has none.
func (el *ErrorList) AttributeTo(file string) {
	for _, err := range el.Errors {
		if err.Location.File == "" {
			err.Location.File = file
		}
	}
}
