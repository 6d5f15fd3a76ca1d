package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

// Run is one validation of one document.
type Run struct {
	// ID uniquely identifies the run. Record assigns a UUID when empty.
	ID string `json:"id" yaml:"id"`

	// Path is the file that was validated, or the source label for
	// in-memory documents.
	Path string `json:"path" yaml:"path"`

	// Generation is the schema generation the document was routed to.
	// Empty when parsing failed before routing.
	Generation string `json:"generation" yaml:"generation"`

	// Success reports whether the document parsed without errors.
	Success bool `json:"success" yaml:"success"`

	// ErrorCount is the number of errors collected.
	ErrorCount int `json:"error_count" yaml:"error_count"`

	// ErrorKinds counts errors per kind.
	ErrorKinds map[string]int `json:"error_kinds,omitempty" yaml:"error_kinds,omitempty"`

	// Duration is how long the parse took.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// CreatedAt is when the run was recorded.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewRun builds a Run from a parse result. A nil result is recorded as a
// failed run with no errors.
func NewRun(path string, result *parser.Result, elapsed time.Duration) *Run {
	run := &Run{
		ID:        uuid.NewString(),
		Path:      path,
		Duration:  elapsed,
		CreatedAt: time.Now().UTC(),
	}
	if result == nil {
		return run
	}

	run.Generation = string(result.Generation)
	run.Success = result.Successful()
	run.ErrorCount = result.Errors.Count()
	if run.ErrorCount > 0 {
		run.ErrorKinds = make(map[string]int)
		for kind, n := range result.Errors.KindCounts() {
			run.ErrorKinds[string(kind)] = n
		}
	}
	return run
}

// Store persists validation runs.
type Store interface {
	// Record saves a run. The run's ID and CreatedAt are filled in when
	// empty.
	Record(ctx context.Context, run *Run) error

	// List returns up to limit runs, newest first. A limit of zero or less
	// returns every run.
	List(ctx context.Context, limit int) ([]*Run, error)

	// Get returns the run with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// Prune deletes all but the newest keep runs and returns how many were
	// removed.
	Prune(ctx context.Context, keep int) (int, error)

	// Close releases the store's resources.
	Close() error
}

func prepare(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}

func cloneRun(run *Run) *Run {
	c := *run
	if run.ErrorKinds != nil {
		c.ErrorKinds = make(map[string]int, len(run.ErrorKinds))
		for k, v := range run.ErrorKinds {
			c.ErrorKinds[k] = v
		}
	}
	return &c
}
