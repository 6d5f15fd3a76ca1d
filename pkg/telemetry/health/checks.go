package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/history"
)

// ErrNoValidationPass is reported until the first validation pass finishes.
var ErrNoValidationPass = errors.New("no validation pass has completed")

// ValidationState holds the outcome of the most recent validation pass.
type ValidationState struct {
	mu     sync.RWMutex
	total  int
	failed int
	at     time.Time
}

// NewValidationState creates a state with no recorded pass.
func NewValidationState() *ValidationState {
	return &ValidationState{}
}

// Record stores the outcome of a validation pass.
func (s *ValidationState) Record(total, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = total
	s.failed = failed
	s.at = time.Now()
}

// Last returns the most recent outcome and when it was recorded. The time
// is zero before the first pass.
func (s *ValidationState) Last() (total, failed int, at time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total, s.failed, s.at
}

// Check fails until a pass has been recorded, and whenever the latest pass
// found invalid files.
func (s *ValidationState) Check(ctx context.Context) error {
	total, failed, at := s.Last()
	if at.IsZero() {
		return ErrNoValidationPass
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d mechanism file(s) invalid", failed, total)
	}
	return nil
}

// StoreCheck returns a check that reads the newest run from store.
func StoreCheck(store history.Store) CheckFunc {
	return func(ctx context.Context) error {
		if _, err := store.List(ctx, 1); err != nil {
			return fmt.Errorf("history store unavailable: %w", err)
		}
		return nil
	}
}
