package services

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/lettercount/internal/domain"
	"github.com/renato0307/lettercount/internal/logging"
	"github.com/renato0307/lettercount/internal/ports"
)

// HistogramService builds the letter histogram of a repository
type HistogramService struct {
	extensions []string
	now        func() time.Time
	source     ports.ContentSource
	walker     *TreeWalker
	workers    int
}

// NewHistogramService creates a new HistogramService.
// extensions fixes both the tracked set and the order groups are processed in;
// workers bounds the number of concurrent fetches within a group.
func NewHistogramService(source ports.ContentSource, extensions []string, workers int) *HistogramService {
	return &HistogramService{
		extensions: extensions,
		now:        time.Now,
		source:     source,
		walker:     NewTreeWalker(source, extensions),
		workers:    max(workers, 1),
	}
}

// Build walks the repository from root, counts letters in every qualifying
// file and returns the merged histogram. Nothing partial is returned on error.
func (s *HistogramService) Build(ctx context.Context, root string) (*domain.Histogram, error) {
	start := s.now()

	files, err := s.walker.Walk(ctx, root)
	if err != nil {
		return nil, err
	}

	groups := s.partition(files)

	partials := make([]domain.FrequencyMap, 0, len(s.extensions))
	summaries := make([]domain.GroupSummary, 0, len(s.extensions))
	for _, ext := range s.extensions {
		counts, err := s.countGroup(ctx, ext, groups[ext])
		if err != nil {
			return nil, err
		}
		partials = append(partials, counts)
		summaries = append(summaries, domain.GroupSummary{
			Extension: ext,
			Files:     len(groups[ext]),
			Letters:   counts.Total(),
		})
	}

	histogram := &domain.Histogram{
		Groups:  summaries,
		Letters: domain.Merge(partials...).Sorted(),
	}
	histogram.Elapsed = s.now().Sub(start)

	logging.Logger.Info("Histogram built",
		"files", histogram.Files(),
		"letters", histogram.Total(),
		"distinct", len(histogram.Letters),
		"elapsed", histogram.Elapsed.String())

	return histogram, nil
}

// partition splits files by extension
func (s *HistogramService) partition(files []domain.RepositoryEntry) map[string][]domain.RepositoryEntry {
	groups := make(map[string][]domain.RepositoryEntry, len(s.extensions))
	for _, f := range files {
		ext := f.Extension()
		groups[ext] = append(groups[ext], f)
	}
	return groups
}

// countGroup fetches and counts every file of one extension group with at
// most s.workers fetches in flight. The first failure cancels the group and
// stops further dispatch.
func (s *HistogramService) countGroup(ctx context.Context, ext string, files []domain.RepositoryEntry) (domain.FrequencyMap, error) {
	logging.Logger.Debug("Counting group", "extension", ext, "files", len(files), "workers", s.workers)

	tally := domain.NewTally()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := s.source.FetchContent(gctx, file.Path)
			if err != nil {
				return errors.Wrapf(err, "failed to fetch %q", file.Path)
			}
			tally.Add(domain.CountLetters(data))
			logging.Logger.Debug("Counted file", "path", file.Path, "bytes", len(data))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.Logger.Debug("Group failed", "extension", ext, "error", err)
		return nil, errors.Wrapf(err, "counting %s files", ext)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "counting %s files", ext)
	}

	return tally.Snapshot(), nil
}
