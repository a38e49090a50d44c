package cmd

import (
	"context"

	"github.com/cockroachdb/errors"

	adaptergit "github.com/renato0307/lettercount/internal/adapters/gitclone"
	adaptergithub "github.com/renato0307/lettercount/internal/adapters/github"
	"github.com/renato0307/lettercount/internal/config"
	"github.com/renato0307/lettercount/internal/ports"
	"github.com/renato0307/lettercount/internal/services"
	"github.com/renato0307/lettercount/internal/version"
)

// sourceFactory builds the content source for a configuration
type sourceFactory func(ctx context.Context, cfg config.Config) (ports.ContentSource, error)

// Container holds all dependencies for one run
type Container struct {
	HistogramService *services.HistogramService
	Source           ports.ContentSource
}

// NewContainer creates a new Container with all dependencies wired.
// A nil factory selects the adapter named by cfg.Source.
func NewContainer(ctx context.Context, cfg config.Config, factory sourceFactory) (*Container, error) {
	if factory == nil {
		factory = newContentSource
	}

	source, err := factory(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		HistogramService: services.NewHistogramService(source, cfg.Extensions, cfg.Workers),
		Source:           source,
	}, nil
}

// newContentSource creates the adapter for cfg.Source
func newContentSource(ctx context.Context, cfg config.Config) (ports.ContentSource, error) {
	switch cfg.Source {
	case config.SourceGit:
		repo, err := adaptergit.Clone(ctx, cfg)
		if err != nil {
			return nil, err
		}
		source, err := adaptergit.NewContentSource(repo)
		if err != nil {
			return nil, err
		}
		return source, nil
	case config.SourceAPI, "":
		client, err := adaptergithub.NewClient(cfg, version.UserAgent())
		if err != nil {
			return nil, err
		}
		return adaptergithub.NewContentSource(client, cfg.Repo), nil
	default:
		return nil, errors.Newf("unknown source %q", cfg.Source)
	}
}
