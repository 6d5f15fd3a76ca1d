package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/watch"
)

// Repository manages a local clone of a mechanism repository.
type Repository struct {
	config    config.GitConfig
	localPath string
	creds     *Credentials
	repo      *gogit.Repository
	mu        sync.RWMutex

	// temporary is set when the clone lives in a directory created by
	// Clone and removed by Close.
	temporary bool
}

// NewRepository creates a repository manager. Nothing is fetched until
// Clone is called.
func NewRepository(cfg config.GitConfig) (*Repository, error) {
	if cfg.Repository == "" {
		return nil, fmt.Errorf("repository URL cannot be empty")
	}
	if cfg.Path != "" && !filepath.IsLocal(cfg.Path) {
		return nil, fmt.Errorf("mechanism path %q must be relative to the repository root", cfg.Path)
	}

	creds, err := NewCredentials(cfg)
	if err != nil {
		return nil, err
	}

	return &Repository{
		config:    cfg,
		localPath: cfg.LocalPath,
		creds:     creds,
		temporary: cfg.LocalPath == "",
	}, nil
}

// Clone makes the repository available locally. An existing clone at the
// local path is opened instead of cloned again. Calling Clone on an
// already cloned repository is a no-op.
func (r *Repository) Clone(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo != nil {
		return nil
	}

	if r.localPath == "" {
		dir, err := os.MkdirTemp("", "mechconfig-git-*")
		if err != nil {
			return fmt.Errorf("failed to create clone directory: %w", err)
		}
		r.localPath = dir
	}

	gitDir := filepath.Join(r.localPath, ".git")
	if _, err := os.Stat(gitDir); err == nil {
		repo, err := gogit.PlainOpen(r.localPath)
		if err != nil {
			return fmt.Errorf("failed to open existing repo: %w", err)
		}
		r.repo = repo
		return nil
	}

	if err := os.MkdirAll(r.localPath, 0o755); err != nil {
		return fmt.Errorf("failed to create repository directory: %w", err)
	}

	cloneOpts := &gogit.CloneOptions{
		URL:   r.config.Repository,
		Depth: r.config.Depth,
		Auth:  r.creds.Method(),
	}
	if r.config.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(r.config.Branch)
		cloneOpts.SingleBranch = true
	}

	cloneCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	repo, err := gogit.PlainCloneContext(cloneCtx, r.localPath, false, cloneOpts)
	if err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}

	r.repo = repo
	return nil
}

// Pull fetches and fast-forwards to the latest remote commit. The result
// lists the files changed when HEAD moved.
func (r *Repository) Pull(ctx context.Context) (*PullResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo == nil {
		return nil, fmt.Errorf("repository not initialized, call Clone() first")
	}

	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	fromSHA := ref.Hash().String()

	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	pullOpts := &gogit.PullOptions{
		RemoteName: "origin",
		Auth:       r.creds.Method(),
	}
	if ref.Name().IsBranch() {
		pullOpts.ReferenceName = ref.Name()
	}

	pullCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err = worktree.PullContext(pullCtx, pullOpts)
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil, fmt.Errorf("failed to pull: %w", err)
	}

	newRef, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get new HEAD: %w", err)
	}
	toSHA := newRef.Hash().String()

	result := &PullResult{
		FromSHA:    fromSHA,
		ToSHA:      toSHA,
		HadChanges: fromSHA != toSHA,
	}

	if result.HadChanges {
		changedFiles, err := r.changedFiles(fromSHA, toSHA)
		if err != nil {
			return nil, fmt.Errorf("failed to get changed files: %w", err)
		}
		result.ChangedFiles = changedFiles
	}

	return result, nil
}

// CurrentCommit returns metadata about the current HEAD commit.
func (r *Repository) CurrentCommit() (*CommitInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.repo == nil {
		return nil, fmt.Errorf("repository not initialized, call Clone() first")
	}

	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	info := &CommitInfo{
		SHA:        commit.Hash.String(),
		Author:     commit.Author.Name,
		Email:      commit.Author.Email,
		Timestamp:  commit.Author.When,
		Message:    commit.Message,
		Repository: r.config.Repository,
	}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	}
	return info, nil
}

// ChangedFiles returns the repository-relative paths changed between two
// commits. A deleted file is reported by its old path.
func (r *Repository) ChangedFiles(fromSHA, toSHA string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.changedFiles(fromSHA, toSHA)
}

// changedFiles is ChangedFiles for callers that already hold r.mu.
func (r *Repository) changedFiles(fromSHA, toSHA string) ([]string, error) {
	if r.repo == nil {
		return nil, fmt.Errorf("repository not initialized")
	}

	fromCommit, err := r.repo.CommitObject(plumbing.NewHash(fromSHA))
	if err != nil {
		return nil, fmt.Errorf("failed to get from commit: %w", err)
	}

	toCommit, err := r.repo.CommitObject(plumbing.NewHash(toSHA))
	if err != nil {
		return nil, fmt.Errorf("failed to get to commit: %w", err)
	}

	fromTree, err := fromCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get from tree: %w", err)
	}

	toTree, err := toCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get to tree: %w", err)
	}

	changes, err := fromTree.Diff(toTree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees: %w", err)
	}

	var files []string
	for _, change := range changes {
		if change.To.Name != "" {
			files = append(files, change.To.Name)
		} else if change.From.Name != "" {
			files = append(files, change.From.Name)
		}
	}

	return files, nil
}

// MechanismFiles returns the mechanism files under the configured path,
// skipping hidden files and directories.
func (r *Repository) MechanismFiles(exts []string) ([]string, error) {
	path := r.MechanismPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("mechanism path does not exist: %w", err)
	}

	files, err := watch.Files(path, exts)
	if err != nil {
		return nil, fmt.Errorf("failed to walk mechanism directory: %w", err)
	}
	return files, nil
}

// URL returns the configured repository URL.
func (r *Repository) URL() string {
	return r.config.Repository
}

// Source returns the repository address with any credentials removed.
func (r *Repository) Source() string {
	return r.creds.Source()
}

// AuthKind returns the authentication type used for the remote.
func (r *Repository) AuthKind() string {
	return r.creds.Kind()
}

// LocalPath returns the directory holding the clone. It is empty for a
// temporary clone until Clone runs.
func (r *Repository) LocalPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.localPath
}

// MechanismPath returns the full path to the mechanism directory within
// the clone.
func (r *Repository) MechanismPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filepath.Join(r.localPath, r.config.Path)
}

// Close releases the repository. A temporary clone is removed.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.repo = nil
	if !r.temporary || r.localPath == "" {
		return nil
	}

	path := r.localPath
	r.localPath = ""
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove clone: %w", err)
	}
	return nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.config.Timeout)
}
