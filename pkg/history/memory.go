package history

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// MemoryStore implements Store in process memory. Runs are lost when the
// process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   []*Run
	byID   map[string]*Run
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*Run),
	}
}

var errClosed = errors.New("store is closed")

// Record saves a copy of run.
func (s *MemoryStore) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return NewStorageError("memory", "record", errors.New("run cannot be nil"))
	}
	prepare(run)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageError("memory", "record", errClosed)
	}

	c := cloneRun(run)
	if old, ok := s.byID[c.ID]; ok {
		for i, r := range s.runs {
			if r == old {
				s.runs = append(s.runs[:i], s.runs[i+1:]...)
				break
			}
		}
	}
	s.runs = append(s.runs, c)
	s.byID[c.ID] = c
	return nil
}

// List returns up to limit runs, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageError("memory", "list", errClosed)
	}

	out := make([]*Run, 0, len(s.runs))
	for _, r := range s.newestFirst() {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneRun(r))
	}
	return out, nil
}

// Get returns the run with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageError("memory", "get", errClosed)
	}

	r, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRun(r), nil
}

// Prune keeps the newest keep runs.
func (s *MemoryStore) Prune(ctx context.Context, keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, NewStorageError("memory", "prune", errClosed)
	}
	if keep < 0 {
		keep = 0
	}

	ordered := s.newestFirst()
	if len(ordered) <= keep {
		return 0, nil
	}

	removed := ordered[keep:]
	for _, r := range removed {
		delete(s.byID, r.ID)
	}
	kept := ordered[:keep]
	s.runs = make([]*Run, 0, len(kept))
	for i := len(kept) - 1; i >= 0; i-- {
		s.runs = append(s.runs, kept[i])
	}
	return len(removed), nil
}

// Close marks the store closed. Later calls fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// newestFirst orders runs by CreatedAt descending; runs recorded at the same
// instant keep reverse insertion order.
func (s *MemoryStore) newestFirst() []*Run {
	ordered := make([]*Run, len(s.runs))
	for i, r := range s.runs {
		ordered[len(s.runs)-1-i] = r
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	return ordered
}
