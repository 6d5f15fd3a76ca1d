// Package history records validation runs so that past results can be listed
// and compared.
//
// Two backends implement Store:
//
//   - MemoryStore keeps runs in process memory and is used when history is
//     enabled without persistence, and in tests.
//   - SQLiteStore persists runs to a SQLite database through the pure Go
//     modernc.org/sqlite driver. The database runs in WAL mode with a single
//     open connection.
//
// Use New to select a backend from config.HistoryConfig:
//
//	store, err := history.New(cfg.History)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	run := history.NewRun(path, result, elapsed)
//	if err := store.Record(ctx, run); err != nil {
//		return err
//	}
package history
