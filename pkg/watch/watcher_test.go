package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// recorder collects change callbacks for assertions.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
	ch    chan struct{}
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan struct{}, 16)}
}

func (r *recorder) onChange(paths []string) error {
	r.mu.Lock()
	r.calls = append(r.calls, paths)
	r.mu.Unlock()
	r.ch <- struct{}{}
	return nil
}

func (r *recorder) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-r.ch:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func startWatcher(t *testing.T, cfg Config, r *recorder) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(cfg, discardLogger())
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := fw.Watch(ctx, r.onChange); err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = fw.Stop()
	})

	// Give the watcher time to register its paths.
	time.Sleep(100 * time.Millisecond)
	return fw
}

func TestNewFileWatcher(t *testing.T) {
	fw, err := NewFileWatcher(Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v, want nil", err)
	}
	defer func() { _ = fw.Stop() }()

	if fw.config.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v, want %v", fw.config.Debounce, DefaultDebounce)
	}
	if diff := cmp.Diff(DefaultExtensions, fw.config.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewFileWatcher(Config{}, nil); err == nil {
		t.Error("NewFileWatcher() with empty path should fail")
	}
}

func TestFileWatcher_StopWithoutWatch(t *testing.T) {
	fw, err := NewFileWatcher(Config{Path: t.TempDir()}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := fw.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
	if err := fw.Watch(context.Background(), func([]string) error { return nil }); err == nil {
		t.Error("Watch() after Stop should fail")
	}
}

func TestFileWatcher_MissingPath(t *testing.T) {
	fw, err := NewFileWatcher(Config{Path: filepath.Join(t.TempDir(), "absent")}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = fw.Stop() }()

	if err := fw.Watch(context.Background(), func([]string) error { return nil }); err == nil {
		t.Error("Watch() on a missing path should fail")
	}
}

func TestFileWatcher_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "version: 1.0.0\n")

	r := newRecorder()
	startWatcher(t, Config{Path: dir, Debounce: 50 * time.Millisecond}, r)

	writeFile(t, filepath.Join(dir, "a.yaml"), "version: 2.0.0\n")
	writeFile(t, filepath.Join(dir, "b.json"), "{}\n")

	got := r.wait(t)
	want := []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.json")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFileWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "mechanism.yaml")
	writeFile(t, target, "version: 1.0.0\n")

	r := newRecorder()
	startWatcher(t, Config{Path: target, Debounce: 50 * time.Millisecond}, r)

	// A sibling change is ignored.
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	writeFile(t, target, "version: 1.0.1\n")

	got := r.wait(t)
	if diff := cmp.Diff([]string{target}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFileWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")

	r := newRecorder()
	startWatcher(t, Config{Path: dir, Debounce: 150 * time.Millisecond}, r)

	for i := 0; i < 5; i++ {
		writeFile(t, path, "version: 1.0.0\n")
		time.Sleep(10 * time.Millisecond)
	}
	r.wait(t)

	// No second callback for the same burst.
	select {
	case <-r.ch:
		t.Error("burst produced more than one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileWatcher_ShouldProcessEvent(t *testing.T) {
	fw := &FileWatcher{config: Config{Extensions: []string{".yaml", ".JSON"}}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write yaml", fsnotify.Event{Name: "/m/a.yaml", Op: fsnotify.Write}, true},
		{"create json upper", fsnotify.Event{Name: "/m/a.Json", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/m/a.yaml", Op: fsnotify.Chmod}, false},
		{"other extension", fsnotify.Event{Name: "/m/a.txt", Op: fsnotify.Write}, false},
		{"hidden file", fsnotify.Event{Name: "/m/.a.yaml", Op: fsnotify.Write}, false},
		{"remove", fsnotify.Event{Name: "/m/a.yaml", Op: fsnotify.Remove}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fw.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent() = %v, want %v", got, tt.want)
			}
		})
	}

	fw.config.IncludeHidden = true
	if !fw.shouldProcessEvent(fsnotify.Event{Name: "/m/.a.yaml", Op: fsnotify.Write}) {
		t.Error("hidden file should be processed when IncludeHidden is set")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "")
	writeFile(t, filepath.Join(dir, "a.json"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "nested", "c.yml"), "")
	writeFile(t, filepath.Join(dir, ".hidden", "d.yaml"), "")
	writeFile(t, filepath.Join(dir, ".e.yaml"), "")

	got, err := Files(dir, nil)
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "nested", "c.yml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Files() mismatch (-want +got):\n%s", diff)
	}

	single := filepath.Join(dir, "notes.txt")
	if got, err := Files(single, nil); err != nil || len(got) != 1 || got[0] != single {
		t.Errorf("Files(file) = %v, %v", got, err)
	}

	if _, err := Files(filepath.Join(dir, "absent"), nil); err == nil {
		t.Error("Files() on a missing path should fail")
	}
}
