package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// DefaultExtensions are the mechanism file extensions watched by default.
var DefaultExtensions = []string{".yaml", ".yml", ".json"}

// Config contains configuration for the file watcher.
type Config struct {
	// Path is the file or directory to watch
	Path string

	// Debounce is the quiet period after the last event before the callback
	// runs (default: 100ms)
	Debounce time.Duration

	// Extensions is the list of file extensions to watch (default: .yaml,
	// .yml, .json). A single watched file is accepted whatever its extension.
	Extensions []string

	// IncludeHidden disables skipping of dot-files and dot-directories
	IncludeHidden bool
}

// ChangeFunc receives the sorted, de-duplicated paths changed during one
// debounce window.
type ChangeFunc func(paths []string) error

// FileWatcher watches mechanism files for changes.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   Config
	debounce *Debouncer

	// target is set when a single file is watched through its directory.
	target string

	mu      sync.Mutex
	running bool
	closed  bool
	pending map[string]struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher(cfg Config, logger *slog.Logger) (*FileWatcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watch path is empty")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger.With("component", "watch"),
		config:   cfg,
		debounce: NewDebouncer(cfg.Debounce),
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks, invoking onChange after each burst of relevant events, until
// ctx is cancelled or Stop is called. Callback errors are logged and do not
// stop the watcher.
func (fw *FileWatcher) Watch(ctx context.Context, onChange ChangeFunc) error {
	fw.mu.Lock()
	if fw.running || fw.closed {
		fw.mu.Unlock()
		return errors.New("watcher already running or stopped")
	}
	fw.running = true
	fw.mu.Unlock()

	defer close(fw.doneCh)

	if err := fw.addPath(fw.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	fw.logger.Info("file watcher started",
		"path", fw.config.Path,
		"debounce_ms", fw.config.Debounce.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("file watcher stopped", "reason", "context cancelled")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}

			fw.trackDirectory(event)
			if !fw.shouldProcessEvent(event) {
				continue
			}

			fw.logger.Debug("file event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			fw.mu.Lock()
			fw.pending[event.Name] = struct{}{}
			fw.mu.Unlock()

			fw.debounce.Trigger(func() {
				paths := fw.drain()
				if len(paths) == 0 {
					return
				}
				if err := onChange(paths); err != nil {
					fw.logger.Error("change handler failed", "error", err)
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.logger.Error("file watcher error", "error", err)
		}
	}
}

// Stop stops the file watcher and releases its resources. It may be called
// whether or not Watch was started.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	running := fw.running
	fw.mu.Unlock()

	close(fw.stopCh)
	if running {
		<-fw.doneCh
	}
	fw.debounce.Stop()

	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// drain returns and clears the pending paths.
func (fw *FileWatcher) drain() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	paths := make([]string, 0, len(fw.pending))
	for p := range fw.pending {
		paths = append(paths, p)
	}
	clear(fw.pending)
	sort.Strings(paths)
	return paths
}

// addPath adds a file or directory to the watcher. A single file is watched
// through its parent directory so that editors replacing the file on save
// do not end the watch.
func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fw.addDirectory(path)
	}

	fw.target = filepath.Clean(path)
	return fw.watcher.Add(filepath.Dir(fw.target))
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (fw *FileWatcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && fw.hidden(path) {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		fw.logger.Debug("watching directory", "path", path)
		return nil
	})
}

// trackDirectory starts watching directories created under a watched tree.
func (fw *FileWatcher) trackDirectory(event fsnotify.Event) {
	if fw.target != "" || !event.Has(fsnotify.Create) || fw.hidden(event.Name) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := fw.addDirectory(event.Name); err != nil {
		fw.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
	}
}

// shouldProcessEvent determines if an event should trigger a callback.
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if fw.target != "" {
		return filepath.Clean(event.Name) == fw.target
	}
	if fw.hidden(event.Name) {
		return false
	}
	return HasExtension(event.Name, fw.config.Extensions)
}

func (fw *FileWatcher) hidden(path string) bool {
	return !fw.config.IncludeHidden && strings.HasPrefix(filepath.Base(path), ".")
}

// HasExtension reports whether path ends in one of exts, ignoring case.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range exts {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

// Files lists the mechanism files under root in lexical order. A root that
// is a file is returned as is. Hidden entries are skipped.
func Files(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && HasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
