package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/source/git"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/tracing"
)

var gitFlags struct {
	url    string
	branch string
	path   string
}

// addGitFlags registers the flags that select a git mechanism source.
func addGitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gitFlags.url, "git", "", "clone mechanism files from this repository URL (default from git.repository)")
	cmd.Flags().StringVar(&gitFlags.branch, "git-branch", "", "branch to check out (default from git.branch)")
	cmd.Flags().StringVar(&gitFlags.path, "git-path", "", "directory within the repository holding mechanism files (default from git.path)")
}

// applyGitFlags copies the git flags over the git config section.
func applyGitFlags(cfg *config.Config) {
	if gitFlags.url != "" {
		cfg.Git.Repository = gitFlags.url
	}
	if gitFlags.branch != "" {
		cfg.Git.Branch = gitFlags.branch
	}
	if gitFlags.path != "" {
		cfg.Git.Path = gitFlags.path
	}
}

// openRepository clones the configured repository. The caller closes the
// returned repository.
func (e *environment) openRepository(ctx context.Context) (*git.Repository, *git.CommitInfo, error) {
	ctx, span := e.tracer.Start(ctx, "mechconfig.git.clone")
	defer span.End()

	repo, err := git.NewRepository(e.cfg.Git)
	if err != nil {
		tracing.SetStatus(span, err)
		return nil, nil, err
	}
	span.SetAttributes(
		attribute.String("mechconfig.git.repository", repo.Source()),
		attribute.String("mechconfig.git.auth", repo.AuthKind()),
	)
	if err := repo.Clone(ctx); err != nil {
		tracing.SetStatus(span, err)
		_ = repo.Close()
		return nil, nil, err
	}

	commit, err := repo.CurrentCommit()
	if err != nil {
		tracing.SetStatus(span, err)
		_ = repo.Close()
		return nil, nil, err
	}
	span.SetAttributes(attribute.String("mechconfig.git.commit", commit.SHA))
	tracing.SetStatus(span, nil)

	e.logger.Info("mechanism repository ready",
		"repository", repo.Source(),
		"auth", repo.AuthKind(),
		"commit", commit.ShortSHA(),
		"branch", commit.Branch,
		"path", repo.MechanismPath(),
	)
	return repo, commit, nil
}

// describeCommit renders a commit for the text output header.
func describeCommit(repo *git.Repository, commit *git.CommitInfo) string {
	if commit.Branch == "" {
		return fmt.Sprintf("%s @ %s", repo.Source(), commit.ShortSHA())
	}
	return fmt.Sprintf("%s @ %s (%s)", repo.Source(), commit.ShortSHA(), commit.Branch)
}
