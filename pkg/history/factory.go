package history

import (
	"fmt"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
)

// New creates the store selected by cfg. The caller owns the returned store
// and must Close it.
func New(cfg config.HistoryConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(SQLiteConfig{
			Path:        cfg.SQLitePath,
			BusyTimeout: cfg.BusyTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported history backend: %q", cfg.Backend)
	}
}
