package gitclone

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/renato0307/lettercount/internal/config"
	"github.com/renato0307/lettercount/internal/logging"
)

// Clone makes a shallow, single-branch, in-memory clone of the configured
// repository. A configured ref is tried as a branch first, then as a tag.
func Clone(ctx context.Context, cfg config.Config) (*git.Repository, error) {
	url := cfg.Repo.CloneURL(cfg.WebHost)

	logging.Logger.Info("Cloning repository", "url", url, "ref", cfg.Repo.Ref)

	if cfg.Repo.Ref == "" {
		return clone(ctx, url, "", auth(cfg.Credentials))
	}

	repo, err := clone(ctx, url, plumbing.NewBranchReferenceName(cfg.Repo.Ref), auth(cfg.Credentials))
	if err == nil {
		return repo, nil
	}
	logging.Logger.Debug("Ref is not a branch, trying tag", "ref", cfg.Repo.Ref, "error", err)

	return clone(ctx, url, plumbing.NewTagReferenceName(cfg.Repo.Ref), auth(cfg.Credentials))
}

func clone(ctx context.Context, url string, ref plumbing.ReferenceName, authMethod transport.AuthMethod) (*git.Repository, error) {
	opts := &git.CloneOptions{
		URL:           url,
		Auth:          authMethod,
		Depth:         1,
		ReferenceName: ref,
		SingleBranch:  true,
		Tags:          git.NoTags,
	}

	// No worktree: files are read straight from the object store
	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clone %s", url)
	}

	logging.Logger.Info("Repository cloned", "url", url, "ref", ref.String())
	return repo, nil
}

// auth returns basic auth for the token, or nil for anonymous access.
// GitHub accepts any username with a token; "git" is used when none is set.
func auth(creds config.Credentials) transport.AuthMethod {
	if creds.Token == "" {
		return nil
	}
	username := creds.Username
	if username == "" {
		username = "git"
	}
	return &http.BasicAuth{
		Username: username,
		Password: creds.Token,
	}
}
