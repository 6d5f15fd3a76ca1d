// Package watch re-runs mechanism validation when files change or on a
// schedule.
//
// FileWatcher wraps fsnotify. It watches a single file or a directory tree,
// filters events by extension, skips hidden files, and coalesces bursts of
// events with a Debouncer so that one editor save yields one callback.
// Changed paths collected during the quiet period are passed to the callback
// in sorted order.
//
// Scheduler wraps robfig/cron and runs a job on a standard five-field cron
// expression. An empty expression disables it.
//
//	fw, err := watch.NewFileWatcher(watch.Config{Path: "mechanisms"}, logger)
//	go fw.Watch(ctx, func(paths []string) error { ... })
//
//	s := watch.NewScheduler("*/15 * * * *", logger)
//	err = s.Start(ctx, func(ctx context.Context) { ... })
package watch
