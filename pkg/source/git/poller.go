package git

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/watch"
)

// DefaultPollInterval is used when NewPoller is given a non-positive
// interval.
const DefaultPollInterval = time.Minute

// PollerStats counts poll outcomes.
type PollerStats struct {
	Polls    int64
	Changes  int64
	Skipped  int64 // new commits that touched no mechanism file
	Failures int64
	LastPoll time.Time
}

// Poller pulls a repository on an interval and reports the mechanism
// files each new commit touched.
//
//	poller := git.NewPoller(repo, time.Minute, exts, logger)
//	err := poller.Watch(ctx, func(paths []string) error {
//	    // revalidate paths
//	    return nil
//	})
type Poller struct {
	repo       *Repository
	interval   time.Duration
	extensions []string
	logger     *slog.Logger

	mu            sync.RWMutex
	lastCommitSHA string
	stats         PollerStats
}

// NewPoller creates a poller for a cloned repository.
func NewPoller(repo *Repository, interval time.Duration, exts []string, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if len(exts) == 0 {
		exts = watch.DefaultExtensions
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		repo:       repo,
		interval:   interval,
		extensions: exts,
		logger:     logger,
	}
}

// Watch polls until ctx is cancelled, calling onChange with the absolute
// paths of the mechanism files changed by each new commit. Deleted files
// are included so callers can forget them. Pull failures are logged and
// retried on the next tick. Watch returns nil when ctx is cancelled.
func (p *Poller) Watch(ctx context.Context, onChange watch.ChangeFunc) error {
	commit, err := p.repo.CurrentCommit()
	if err != nil {
		return fmt.Errorf("failed to get initial commit: %w", err)
	}
	p.mu.Lock()
	p.lastCommitSHA = commit.SHA
	p.mu.Unlock()

	p.logger.Info("git poller started",
		"repository", p.repo.URL(),
		"poll_interval", p.interval,
		"commit", commit.ShortSHA(),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("git poller stopped", "reason", "context cancelled")
			return nil
		case <-ticker.C:
			paths, err := p.Check(ctx)
			if err != nil {
				p.logger.Error("error checking for changes", "error", err)
				continue
			}
			if len(paths) == 0 {
				continue
			}
			if err := onChange(paths); err != nil {
				p.logger.Error("change handler failed", "error", err)
			}
		}
	}
}

// Check pulls once and returns the absolute paths of the mechanism files
// changed since the last check.
func (p *Poller) Check(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	p.stats.Polls++
	p.stats.LastPoll = time.Now()
	p.mu.Unlock()

	result, err := p.repo.Pull(ctx)
	if err != nil {
		p.mu.Lock()
		p.stats.Failures++
		p.mu.Unlock()
		return nil, err
	}
	if !result.HadChanges {
		return nil, nil
	}

	paths := p.mechanismChanges(result.ChangedFiles)

	p.mu.Lock()
	p.lastCommitSHA = result.ToSHA
	if len(paths) == 0 {
		p.stats.Skipped++
	} else {
		p.stats.Changes++
	}
	p.mu.Unlock()

	p.logger.Info("detected changes",
		"from_sha", shortSHA(result.FromSHA),
		"to_sha", shortSHA(result.ToSHA),
		"changed_files", len(result.ChangedFiles),
		"mechanism_files", len(paths),
	)
	return paths, nil
}

// mechanismChanges maps repository-relative paths to absolute paths of
// mechanism files under the mechanism directory.
func (p *Poller) mechanismChanges(files []string) []string {
	root := p.repo.LocalPath()
	mechanismPath := p.repo.MechanismPath()

	var paths []string
	for _, file := range files {
		abs := filepath.Join(root, filepath.FromSlash(file))
		rel, err := filepath.Rel(mechanismPath, abs)
		if err != nil || !filepath.IsLocal(rel) {
			continue
		}
		if hiddenPath(rel) || !watch.HasExtension(abs, p.extensions) {
			continue
		}
		paths = append(paths, abs)
	}
	return paths
}

// LastCommitSHA returns the commit of the last observed change.
func (p *Poller) LastCommitSHA() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastCommitSHA
}

// Stats returns a snapshot of the poll counters.
func (p *Poller) Stats() PollerStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

func hiddenPath(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
