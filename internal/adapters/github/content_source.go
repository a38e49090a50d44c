package github

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	gogithub "github.com/google/go-github/v74/github"

	"github.com/renato0307/lettercount/internal/domain"
	"github.com/renato0307/lettercount/internal/logging"
)

// ContentSource lists and downloads repository files through the contents API
type ContentSource struct {
	client *gogithub.Client
	repo   domain.RepoSource
}

// NewContentSource creates a ContentSource for one repository
func NewContentSource(client *gogithub.Client, repo domain.RepoSource) *ContentSource {
	return &ContentSource{
		client: client,
		repo:   repo,
	}
}

// ListDirectory returns the immediate children of path
func (s *ContentSource) ListDirectory(ctx context.Context, path string) ([]domain.RepositoryEntry, error) {
	logging.Logger.Debug("Listing directory", "repo", s.repo.String(), "path", path)

	file, dir, _, err := s.client.Repositories.GetContents(ctx, s.repo.Owner, s.repo.Repo, path, s.options())
	if err != nil {
		return nil, classify(err)
	}
	if file != nil {
		return nil, errors.Wrapf(domain.ErrNotFound, "%q is a file, not a directory", path)
	}

	entries := make([]domain.RepositoryEntry, 0, len(dir))
	for _, c := range dir {
		entries = append(entries, toEntry(c))
	}
	return entries, nil
}

// FetchContent returns the raw bytes of the file at path.
// Files above the contents API inline limit (1 MB) come back without an
// inline body and are streamed from their download URL instead.
func (s *ContentSource) FetchContent(ctx context.Context, path string) ([]byte, error) {
	file, _, _, err := s.client.Repositories.GetContents(ctx, s.repo.Owner, s.repo.Repo, path, s.options())
	if err != nil {
		return nil, classify(err)
	}
	if file == nil {
		return nil, errors.Wrapf(domain.ErrNotAFile, "%q", path)
	}

	if file.GetEncoding() != "none" {
		content, err := file.GetContent()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode %q", path)
		}
		return []byte(content), nil
	}

	logging.Logger.Debug("Downloading large file", "path", path, "size", file.GetSize())

	body, _, err := s.client.Repositories.DownloadContents(ctx, s.repo.Owner, s.repo.Repo, path, s.options())
	if err != nil {
		return nil, classify(err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	return data, nil
}

func (s *ContentSource) options() *gogithub.RepositoryContentGetOptions {
	if s.repo.Ref == "" {
		return nil
	}
	return &gogithub.RepositoryContentGetOptions{Ref: s.repo.Ref}
}

// toEntry converts an API listing item into a domain entry
func toEntry(c *gogithub.RepositoryContent) domain.RepositoryEntry {
	entry := domain.RepositoryEntry{
		Name: c.GetName(),
		Path: c.GetPath(),
		Size: int64(c.GetSize()),
	}
	switch c.GetType() {
	case "file":
		entry.Type = domain.EntryTypeFile
	case "dir":
		entry.Type = domain.EntryTypeDirectory
	default:
		// symlink, submodule
		entry.Type = domain.EntryTypeOther
	}
	return entry
}
