package parser

import (
	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Result is the outcome of one parse. Mechanism is nil only when a fatal
// defect stopped parsing; otherwise it holds every entity that parsed
// cleanly, even when Errors is not empty.
type Result struct {
	Mechanism  *types.Mechanism
	Errors     *mechErrors.ErrorList
	Generation Generation
	Source     string
}

func newResult(source string) *Result {
	return &Result{Errors: mechErrors.NewErrorList(), Source: source}
}

// Successful reports whether a mechanism was produced without any error.
func (r *Result) Successful() bool {
	return r.Mechanism != nil && !r.Errors.HasErrors()
}

// HasErrors reports whether any error was collected.
func (r *Result) HasErrors() bool {
	return r.Errors.HasErrors()
}

// Err returns the collected errors as an error, or nil.
func (r *Result) Err() error {
	return r.Errors.ToError()
}
