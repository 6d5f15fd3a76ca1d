package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
)

const gasMechanism = `
version: 1.0.0
species:
  - name: A
phases:
  - name: gas
    species: [A]
`

// createTestRepo creates a repository with one commit holding a mechanism
// file under mechanisms/ and a README at the root.
func createTestRepo(t *testing.T, dir string) *gogit.Repository {
	t.Helper()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	commitFiles(t, repo, dir, "initial commit", map[string]string{
		"mechanisms/gas.yaml": gasMechanism,
		"README.md":           "# mechanisms\n",
	})
	return repo
}

// commitFiles writes files (path to content, empty content deletes) and
// commits them. It returns the new commit SHA.
func commitFiles(t *testing.T, repo *gogit.Repository, dir, message string, files map[string]string) string {
	t.Helper()

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if content == "" {
			if _, err := worktree.Remove(name); err != nil {
				t.Fatalf("failed to remove %s: %v", name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		if _, err := worktree.Add(name); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return hash.String()
}

// cloneTestRepo clones sourceDir into a fresh temporary directory.
func cloneTestRepo(t *testing.T, sourceDir string) *Repository {
	t.Helper()

	r, err := NewRepository(config.GitConfig{
		Repository: sourceDir,
		Path:       "mechanisms",
		LocalPath:  filepath.Join(t.TempDir(), "clone"),
		Timeout:    10 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	if err := r.Clone(t.Context()); err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}
