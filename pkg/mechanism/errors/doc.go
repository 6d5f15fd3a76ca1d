// Package errors provides the error taxonomy and the accumulator used by the
// mechanism configuration parser.
//
// Parsing never stops at the first defect. Every component appends to one
// shared ErrorList, and callers receive the complete list in a single call:
//
//	errs := errors.NewErrorList()
//	errs.AddError(errors.UnknownPhase, "Unknown phase 'liquid'", loc)
//	errs.AddErrorWithSuggestion(errors.UnknownKey, "Non-standard key 'nmae' found", loc,
//	    errors.SuggestKey("nmae", []string{"name", "type"}))
//
//	if errs.HasErrors() {
//	    fmt.Println(errs.Error())
//	}
//
// Each Error carries a Kind from a fixed enumeration, a free-text message and
// the location of the offending node. Kinds are the only machine-readable
// payload; messages are for people.
//
// # Error Format
//
//	[UnknownKey] Non-standard key 'nmae' found
//	  --> mechanism.yaml:12:5
//	  |
//	   11 |   - name: A
//	-> 12 |     nmae: B
//	      |     ^
//	   13 | phases:
//	  |
//	  = suggestion: Did you mean 'name'?
package errors
