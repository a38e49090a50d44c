package ports

import (
	"context"

	"github.com/renato0307/lettercount/internal/domain"
)

// ContentLister lists the immediate children of a repository directory.
// The empty path denotes the repository root.
type ContentLister interface {
	ListDirectory(ctx context.Context, path string) ([]domain.RepositoryEntry, error)
}

// ContentFetcher returns the raw bytes of a repository file
type ContentFetcher interface {
	FetchContent(ctx context.Context, path string) ([]byte, error)
}

// ContentSource is the composite interface
type ContentSource interface {
	ContentLister
	ContentFetcher
}
