package services

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/renato0307/lettercount/internal/domain"
	"github.com/renato0307/lettercount/internal/logging"
	"github.com/renato0307/lettercount/internal/ports"
)

// TreeWalker enumerates the qualifying files of a repository
type TreeWalker struct {
	extensions map[string]bool
	lister     ports.ContentLister
}

// NewTreeWalker creates a walker that keeps files whose extension is in extensions
func NewTreeWalker(lister ports.ContentLister, extensions []string) *TreeWalker {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[ext] = true
	}
	return &TreeWalker{
		extensions: set,
		lister:     lister,
	}
}

// Qualifies reports whether entry is a file with a tracked extension.
// Extensions are matched exactly, so "foo.jts" never matches ".ts".
func (w *TreeWalker) Qualifies(entry domain.RepositoryEntry) bool {
	return entry.IsFile() && w.extensions[entry.Extension()]
}

// Walk lists root and every directory below it, depth first, and returns the
// qualifying files in listing order. Listing happens one directory at a time.
// The first listing error aborts the walk.
func (w *TreeWalker) Walk(ctx context.Context, root string) ([]domain.RepositoryEntry, error) {
	logging.Logger.Debug("Walking repository tree", "root", root)

	var files []domain.RepositoryEntry
	var directories int

	// Explicit stack instead of recursion; children are pushed in reverse so
	// they pop in listing order
	stack := []domain.RepositoryEntry{{Path: root, Type: domain.EntryTypeDirectory}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "walk interrupted")
		}

		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case entry.IsDir():
			children, err := w.lister.ListDirectory(ctx, entry.Path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to list %q", displayPath(entry.Path))
			}
			directories++
			for _, child := range slices.Backward(children) {
				stack = append(stack, child)
			}
		case w.Qualifies(entry):
			files = append(files, entry)
		}
	}

	logging.Logger.Debug("Repository tree walked",
		"root", root,
		"directories", directories,
		"files", len(files))

	return files, nil
}

// displayPath renders the repository root readably in messages
func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
