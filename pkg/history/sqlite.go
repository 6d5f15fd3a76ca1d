package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultBusyTimeout is how long SQLite waits on a locked database.
const DefaultBusyTimeout = 5 * time.Second

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	// Path is the database file. Parent directories are created.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db        *sql.DB
	path      string
	mu        sync.RWMutex
	closeOnce sync.Once

	recordStmt *sql.Stmt
	listStmt   *sql.Stmt
	getStmt    *sql.Stmt
	pruneStmt  *sql.Stmt
}

// NewSQLiteStore opens (creating if needed) the database at cfg.Path.
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, NewStorageError("sqlite", "open", errors.New("database path cannot be empty"))
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = DefaultBusyTimeout
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, NewStorageError("sqlite", "open", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db, path: cfg.Path}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, NewStorageError("sqlite", "create_schema", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, NewStorageError("sqlite", "prepare", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		generation TEXT NOT NULL,
		success INTEGER NOT NULL,
		error_count INTEGER NOT NULL,
		error_kinds TEXT,
		duration_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_validation_runs_created_at ON validation_runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.recordStmt, err = s.db.Prepare(`
		INSERT INTO validation_runs (id, path, generation, success, error_count, error_kinds, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			path = excluded.path,
			generation = excluded.generation,
			success = excluded.success,
			error_count = excluded.error_count,
			error_kinds = excluded.error_kinds,
			duration_ns = excluded.duration_ns,
			created_at = excluded.created_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare record statement: %w", err)
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT id, path, generation, success, error_count, error_kinds, duration_ns, created_at
		FROM validation_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list statement: %w", err)
	}

	s.getStmt, err = s.db.Prepare(`
		SELECT id, path, generation, success, error_count, error_kinds, duration_ns, created_at
		FROM validation_runs
		WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare get statement: %w", err)
	}

	s.pruneStmt, err = s.db.Prepare(`
		DELETE FROM validation_runs
		WHERE id NOT IN (
			SELECT id FROM validation_runs
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare prune statement: %w", err)
	}

	return nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Record inserts or replaces a run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return NewStorageError("sqlite", "record", errors.New("run cannot be nil"))
	}
	prepare(run)

	var kinds []byte
	if len(run.ErrorKinds) > 0 {
		var err error
		kinds, err = json.Marshal(run.ErrorKinds)
		if err != nil {
			return NewStorageError("sqlite", "record", fmt.Errorf("failed to marshal error kinds: %w", err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.recordStmt.ExecContext(ctx,
		run.ID,
		run.Path,
		run.Generation,
		run.Success,
		run.ErrorCount,
		string(kinds),
		int64(run.Duration),
		run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}
	return nil
}

// List returns up to limit runs, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.listStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	runs := []*Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, NewStorageError("sqlite", "list", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	return runs, nil
}

// Get returns the run with the given ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := scanRun(s.getStmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, NewStorageError("sqlite", "get", err)
	}
	return run, nil
}

// Prune keeps the newest keep runs.
func (s *SQLiteStore) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.pruneStmt.ExecContext(ctx, keep)
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}
	return int(n), nil
}

// Close closes the prepared statements and the database.
func (s *SQLiteStore) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for _, stmt := range []*sql.Stmt{s.recordStmt, s.listStmt, s.getStmt, s.pruneStmt} {
			if stmt != nil {
				stmt.Close()
			}
		}
		if err := s.db.Close(); err != nil {
			closeErr = NewStorageError("sqlite", "close", err)
		}
	})
	return closeErr
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run       Run
		kinds     sql.NullString
		duration  int64
		createdAt int64
	)
	if err := row.Scan(
		&run.ID,
		&run.Path,
		&run.Generation,
		&run.Success,
		&run.ErrorCount,
		&kinds,
		&duration,
		&createdAt,
	); err != nil {
		return nil, err
	}

	run.Duration = time.Duration(duration)
	run.CreatedAt = time.Unix(0, createdAt).UTC()
	if kinds.Valid && kinds.String != "" {
		if err := json.Unmarshal([]byte(kinds.String), &run.ErrorKinds); err != nil {
			return nil, fmt.Errorf("failed to unmarshal error kinds: %w", err)
		}
	}
	return &run, nil
}
