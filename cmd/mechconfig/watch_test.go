package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
)

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, buf.String())
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunWatch(t *testing.T) {
	useConfig(t, "")
	dir := t.TempDir()
	copyFile(t, "testdata/valid/gas.yaml", filepath.Join(dir, "gas.yaml"))

	cmd, out, _ := newTestCommand(t, "watch")
	env, err := loadEnvironment(cmd, func(cfg *config.Config) {
		cfg.Watch.Debounce = 20 * time.Millisecond
		cfg.Telemetry.Metrics.Enabled = true
		cfg.Telemetry.Metrics.ListenAddress = "127.0.0.1:0"
	})
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, cmd, env, dir, nil) }()

	waitFor(t, out, "initial: 1 file(s)")
	waitFor(t, out, "✓ "+filepath.Join(dir, "gas.yaml"))

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	copyFile(t, "testdata/invalid.yaml", filepath.Join(dir, "broken.yaml"))

	waitFor(t, out, "change: 1 file(s)")
	waitFor(t, out, "✗ "+filepath.Join(dir, "broken.yaml"))

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runWatch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runWatch() did not return after cancel")
	}

	n, err := testutil.GatherAndCount(env.collector.Registry(), "mechconfig_parser_revalidations_total")
	if err != nil {
		t.Fatal(err)
	}
	if n < 2 {
		t.Errorf("revalidations_total series = %d, want initial and change", n)
	}
}

func TestRunWatchMissingPath(t *testing.T) {
	useConfig(t, "")
	cmd, _, _ := newTestCommand(t, "watch")
	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	if err := runWatch(context.Background(), cmd, env, filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("runWatch() on a missing path should return error")
	}
}

func TestRevalidatorSkipsRemovedFiles(t *testing.T) {
	useConfig(t, "")
	cmd, out, _ := newTestCommand(t, "watch")
	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	rv := newRevalidator(cmd, env, t.TempDir())
	rv.valid[filepath.Join(rv.root, "gone.yaml")] = false
	rv.run(context.Background(), triggerChange, []string{filepath.Join(rv.root, "gone.yaml")})

	if out.String() != "" {
		t.Errorf("output = %q, want nothing for removed files", out)
	}
	if len(rv.valid) != 0 {
		t.Errorf("valid = %v, want the removed file forgotten", rv.valid)
	}
	if err := rv.state.Check(context.Background()); err != nil {
		t.Errorf("state.Check() = %v, want nil once the invalid file is gone", err)
	}
}

func TestRevalidatorReloadConfig(t *testing.T) {
	path := useConfig(t, "parser:\n  context_lines: 2\n")
	cmd, _, _ := newTestCommand(t, "watch")
	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	rv := newRevalidator(cmd, env, t.TempDir())

	if err := os.WriteFile(path, []byte("parser:\n  context_lines: 5\n  max_file_size: 2048\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := rv.reloadConfig(); err != nil {
		t.Fatalf("reloadConfig() error = %v", err)
	}
	if env.cfg.Parser.ContextLines != 5 || env.cfg.Parser.MaxFileSize != 2048 {
		t.Errorf("Parser config = %+v, want context_lines 5 and max_file_size 2048", env.cfg.Parser)
	}

	// Sections built at startup keep their values until a restart.
	if err := os.WriteFile(path, []byte("parser:\n  context_lines: 5\n  max_file_size: 2048\nhistory:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := rv.reloadConfig(); err != nil {
		t.Fatalf("reloadConfig() error = %v", err)
	}
	if env.cfg.History.Enabled {
		t.Error("reloadConfig() enabled history, want it left for a restart")
	}

	if err := os.WriteFile(path, []byte("parser:\n  max_file_size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := rv.reloadConfig(); err == nil {
		t.Error("reloadConfig() with invalid config should return error")
	}
	if env.cfg.Parser.ContextLines != 5 {
		t.Errorf("failed reload changed the parser config: %+v", env.cfg.Parser)
	}
}

func TestRevalidatorReadiness(t *testing.T) {
	useConfig(t, "")
	cmd, out, _ := newTestCommand(t, "watch")
	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	ctx := context.Background()
	rv := newRevalidator(cmd, env, "testdata")

	rv.run(ctx, triggerInitial, []string{"testdata/valid/gas.yaml"})
	if err := rv.state.Check(ctx); err != nil {
		t.Errorf("state.Check() after a valid file = %v, want nil", err)
	}

	rv.run(ctx, triggerChange, []string{"testdata/invalid.yaml"})
	err = rv.state.Check(ctx)
	if err == nil || err.Error() != "1 of 2 mechanism file(s) invalid" {
		t.Errorf("state.Check() = %v, want 1 of 2 invalid", err)
	}

	if !strings.Contains(out.String(), "change: 1 file(s)") {
		t.Errorf("output missing change pass header:\n%s", out)
	}
}
