package gitclone

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/lettercount/internal/domain"
)

// ContentSource reads the HEAD tree of a cloned repository.
// Tree lookups lazily build internal indexes, so access is serialized.
type ContentSource struct {
	mu   sync.Mutex
	repo *git.Repository
	root *object.Tree
}

// NewContentSource resolves HEAD of repo and serves its tree
func NewContentSource(repo *git.Repository) (*ContentSource, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get HEAD")
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load commit %s", head.Hash())
	}

	root, err := commit.Tree()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tree")
	}

	return &ContentSource{
		repo: repo,
		root: root,
	}, nil
}

// ListDirectory returns the immediate children of path
func (s *ContentSource) ListDirectory(ctx context.Context, path string) ([]domain.RepositoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree := s.root
	if path != "" {
		sub, err := s.root.Tree(path)
		if errors.Is(err, object.ErrDirectoryNotFound) {
			return nil, errors.Wrapf(domain.ErrNotFound, "%q", path)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %q", path)
		}
		tree = sub
	}

	entries := make([]domain.RepositoryEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entry := domain.RepositoryEntry{
			Name: e.Name,
			Path: joinPath(path, e.Name),
			Type: entryType(e.Mode),
		}
		if entry.IsFile() {
			if blob, err := s.repo.BlobObject(e.Hash); err == nil {
				entry.Size = blob.Size
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FetchContent returns the bytes of the file at path
func (s *ContentSource) FetchContent(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.root.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, errors.Wrapf(domain.ErrNotFound, "%q", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	return data, nil
}

func entryType(mode filemode.FileMode) domain.EntryType {
	switch mode {
	case filemode.Dir:
		return domain.EntryTypeDirectory
	case filemode.Regular, filemode.Executable, filemode.Deprecated:
		return domain.EntryTypeFile
	default:
		// Symlink, Submodule
		return domain.EntryTypeOther
	}
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
