package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

// FileReport is the validation outcome for one document.
type FileReport struct {
	File       string        `json:"file" yaml:"file"`
	RunID      string        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Valid      bool          `json:"valid" yaml:"valid"`
	Generation string        `json:"generation,omitempty" yaml:"generation,omitempty"`
	Species    int           `json:"species" yaml:"species"`
	Phases     int           `json:"phases" yaml:"phases"`
	Reactions  int           `json:"reactions" yaml:"reactions"`
	Models     int           `json:"models" yaml:"models"`
	Errors     []ReportError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Duration   time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// ReportError is a single error within a FileReport.
type ReportError struct {
	Kind       string `json:"kind" yaml:"kind"`
	Message    string `json:"message" yaml:"message"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	Line       int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column     int    `json:"column,omitempty" yaml:"column,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Context    string `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewFileReport flattens a parse result. File is omitted from an error
// when it names the validated file itself.
func NewFileReport(path string, result *parser.Result, elapsed time.Duration) *FileReport {
	report := &FileReport{
		File:     path,
		Duration: elapsed,
	}
	if result == nil {
		return report
	}

	report.Valid = result.Successful()
	report.Generation = string(result.Generation)

	if m := result.Mechanism; m != nil {
		report.Species = len(m.Species)
		report.Phases = len(m.Phases)
		report.Reactions = m.Reactions.Count()
		report.Models = m.Models.Count()
	}

	for _, e := range result.Errors.Errors {
		re := ReportError{
			Kind:       string(e.Kind),
			Message:    e.Message,
			Line:       e.Location.Line,
			Column:     e.Location.Column,
			Suggestion: e.Suggestion,
			Context:    e.Context,
		}
		if e.Location.File != path {
			re.File = e.Location.File
		}
		report.Errors = append(report.Errors, re)
	}
	return report
}

// Summary totals a set of reports.
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
	Errors int `json:"errors" yaml:"errors"`
}

// Summarize totals reports.
func Summarize(reports []*FileReport) Summary {
	var s Summary
	for _, r := range reports {
		s.Total++
		if r.Valid {
			s.Passed++
		} else {
			s.Failed++
		}
		s.Errors += len(r.Errors)
	}
	return s
}

// Report is the structured form of a validate run.
type Report struct {
	Files   []*FileReport `json:"files" yaml:"files"`
	Summary Summary       `json:"summary" yaml:"summary"`
}

// NewReport bundles reports with their summary.
func NewReport(reports []*FileReport) *Report {
	if reports == nil {
		reports = []*FileReport{}
	}
	return &Report{Files: reports, Summary: Summarize(reports)}
}

// TextOptions controls WriteReports.
type TextOptions struct {
	// Verbose adds source context under each error.
	Verbose bool
}

// WriteReports prints one line per file followed by its errors and a
// summary, and returns the summary.
func WriteReports(w io.Writer, reports []*FileReport, opts TextOptions) Summary {
	for _, r := range reports {
		writeReport(w, r, opts)
	}

	s := Summarize(reports)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  %d file(s), %d passed, %d failed, %d error(s)\n", s.Total, s.Passed, s.Failed, s.Errors)
	return s
}

func writeReport(w io.Writer, r *FileReport, opts TextOptions) {
	mark := "✓"
	if !r.Valid {
		mark = "✗"
	}

	var details []string
	if r.Generation != "" {
		details = append(details, r.Generation)
	}
	if r.Valid {
		details = append(details,
			fmt.Sprintf("%d species", r.Species),
			fmt.Sprintf("%d phases", r.Phases),
			fmt.Sprintf("%d reactions", r.Reactions),
		)
		if r.Models > 0 {
			details = append(details, fmt.Sprintf("%d models", r.Models))
		}
	} else {
		details = append(details, fmt.Sprintf("%d error(s)", len(r.Errors)))
	}

	fmt.Fprintf(w, "%s %s", mark, r.File)
	if len(details) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(details, ", "))
	}
	fmt.Fprintln(w)

	for _, e := range r.Errors {
		fmt.Fprintf(w, "    %s[%s] %s\n", position(e), e.Kind, e.Message)
		if e.Suggestion != "" {
			fmt.Fprintf(w, "        suggestion: %s\n", e.Suggestion)
		}
		if opts.Verbose && e.Context != "" {
			for _, line := range strings.Split(strings.TrimRight(e.Context, "\n"), "\n") {
				fmt.Fprintf(w, "        %s\n", line)
			}
		}
	}
}

func position(e ReportError) string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d", e.Line, e.Column)
	}
	if sb.Len() == 0 {
		return ""
	}
	return sb.String() + " "
}
