package services

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/renato0307/lettercount/internal/domain"
)

// fakeSource is an in-memory repository keyed by file path
type fakeSource struct {
	delay       time.Duration
	files       map[string]string
	inFlight    int
	maxInFlight int
	mu          sync.Mutex
}

func newFakeSource(files map[string]string) *fakeSource {
	return &fakeSource{files: files}
}

func (f *fakeSource) ListDirectory(_ context.Context, dir string) ([]domain.RepositoryEntry, error) {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := make(map[string]domain.RepositoryEntry)
	for p, content := range f.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		name, _, isDir := strings.Cut(rest, "/")
		entry := domain.RepositoryEntry{
			Name: name,
			Path: path.Join(dir, name),
			Type: domain.EntryTypeFile,
			Size: int64(len(content)),
		}
		if isDir {
			entry.Type = domain.EntryTypeDirectory
			entry.Size = 0
		}
		seen[name] = entry
	}

	if dir != "" && len(seen) == 0 {
		return nil, errors.Wrap(domain.ErrNotFound, dir)
	}

	entries := make([]domain.RepositoryEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (f *fakeSource) FetchContent(ctx context.Context, p string) ([]byte, error) {
	f.mu.Lock()
	f.inFlight++
	f.maxInFlight = max(f.maxInFlight, f.inFlight)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	content, ok := f.files[p]
	if !ok {
		return nil, errors.Wrap(domain.ErrNotFound, p)
	}
	return []byte(content), nil
}

func (f *fakeSource) peakConcurrency() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}
