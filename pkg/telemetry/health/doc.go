// Package health serves liveness and readiness endpoints for long-running
// mechconfig processes such as the watch command.
//
// A Checker runs named checks concurrently, each under a timeout. Liveness
// only reports that the process is up. Readiness aggregates every
// registered check and answers 503 when any of them fails, so that a
// deployment can gate on every watched mechanism being valid.
//
// Usage:
//
//	state := health.NewValidationState()
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("mechanisms", state.Check)
//	checker.RegisterCheck("history", health.StoreCheck(store))
//
//	mux := http.NewServeMux()
//	health.Register(mux, checker, health.NewVersionInfo("1.0.0", "abc123", "2025-11-20"))
//
//	// After each validation pass:
//	state.Record(summary.Total, summary.Failed)
//
// Endpoints:
//
//   - /health: always 200 while the process is running
//   - /ready: 200 when every check passes, 503 otherwise
//   - /version: build information
package health
