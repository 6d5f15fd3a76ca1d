// Package git reads mechanism configurations from a Git repository.
//
// A Repository clones the configured URL (HTTPS with a token, SSH with a
// key, or an unauthenticated or local path) and lists the mechanism files
// under a directory of the clone. A Poller pulls on an interval and
// reports the mechanism files touched by each new commit, which the watch
// command revalidates the same way it handles local file events.
//
// Basic usage:
//
//	repo, err := git.NewRepository(cfg.Git)
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
//
//	if err := repo.Clone(ctx); err != nil {
//	    return err
//	}
//	files, err := repo.MechanismFiles(cfg.Watch.Extensions)
//
// Changed-file detection diffs the previous and new HEAD trees, so the
// previous commit must be present. Leave git.depth at 0 when watching.
package git
