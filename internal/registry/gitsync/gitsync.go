package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/chisom-ui/chisom/internal/logger"
)

// Options configures a registry sync.
type Options struct {
	// URL is the upstream registry repository.
	URL string
	// Dir is the local checkout directory.
	Dir string
	// Branch pins a branch; empty means the remote default.
	Branch string
	// Depth limits clone history; zero means full history.
	Depth int
}

// Result describes the outcome of a sync.
type Result struct {
	// Cloned is true for a fresh clone, false for an update of an existing checkout.
	Cloned bool
	// UpToDate is true when an existing checkout needed no changes.
	UpToDate bool
	// Head is the commit hash after the sync.
	Head string
}

// Sync clones the upstream registry repository into the checkout directory, or
// fast-forwards an existing checkout. A directory that exists but is not a git
// repository is replaced.
func Sync(ctx context.Context, opts Options, log *logger.Logger) (*Result, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("no registry repository configured")
	}

	repo, err := git.PlainOpen(opts.Dir)
	switch {
	case err == nil:
		return pull(ctx, repo, opts, log)
	case errors.Is(err, git.ErrRepositoryNotExists):
		return clone(ctx, opts, log)
	default:
		return nil, fmt.Errorf("failed to open registry checkout: %w", err)
	}
}

func clone(ctx context.Context, opts Options, log *logger.Logger) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Dir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create checkout parent directory: %w", err)
	}

	// A leftover non-git directory shadows the clone target.
	if info, err := os.Stat(opts.Dir); err == nil && info.IsDir() {
		if err := os.RemoveAll(opts.Dir); err != nil {
			return nil, fmt.Errorf("failed to remove stale checkout: %w", err)
		}
	}

	cloneOpts := &git.CloneOptions{
		URL: opts.URL,
	}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	log.WithFields(map[string]any{"url": opts.URL, "dir": opts.Dir}).Info("cloning registry repository")

	repo, err := git.PlainCloneContext(ctx, opts.Dir, false, cloneOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to clone registry repository: %w", err)
	}

	head, err := headHash(repo)
	if err != nil {
		return nil, err
	}

	return &Result{Cloned: true, Head: head}, nil
}

func pull(ctx context.Context, repo *git.Repository, opts Options, log *logger.Logger) (*Result, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open registry worktree: %w", err)
	}

	pullOpts := &git.PullOptions{
		RemoteName: "origin",
	}
	if opts.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		pullOpts.SingleBranch = true
	}

	log.WithFields(map[string]any{"dir": opts.Dir}).Info("updating registry checkout")

	err = worktree.PullContext(ctx, pullOpts)
	upToDate := errors.Is(err, git.NoErrAlreadyUpToDate)
	if err != nil && !upToDate {
		return nil, fmt.Errorf("failed to update registry checkout: %w", err)
	}

	head, err := headHash(repo)
	if err != nil {
		return nil, err
	}

	return &Result{UpToDate: upToDate, Head: head}, nil
}

func headHash(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve registry HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// RegistryFile returns the location of the registry JSON inside a checkout.
func RegistryFile(dir string) string {
	return filepath.Join(dir, "registry.json")
}
