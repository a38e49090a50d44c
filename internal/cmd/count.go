package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/renato0307/lettercount/internal/config"
	"github.com/renato0307/lettercount/internal/domain"
	"github.com/renato0307/lettercount/internal/logging"
	"github.com/renato0307/lettercount/internal/ui"
)

// CountCmd builds and prints the letter histogram of a repository
type CountCmd struct {
	Repository string `arg:"" optional:"" default:"lodash/lodash" help:"Repository as owner/repo or URL, optionally suffixed with #ref"`

	BaseURL    string        `help:"GitHub API base URL (set for GitHub Enterprise)" env:"GITHUB_API_URL" default:"https://api.github.com/"`
	Extensions []string      `help:"Tracked file extensions, in report order" default:".js,.ts" sep:","`
	Format     string        `help:"Output format" default:"list" enum:"list,chart"`
	Path       string        `help:"Directory to start from (default: repository root)"`
	Ref        string        `help:"Branch, tag or commit to read (overrides #ref)"`
	Source     string        `help:"Where files are read from: the contents API or a shallow git clone" default:"api" enum:"api,git"`
	Timeout    time.Duration `help:"Abort the run after this long (0 = no limit)" default:"0s"`
	Token      string        `help:"GitHub token" env:"GITHUB_TOKEN"`
	Username   string        `help:"GitHub username, sent with the token as basic auth" env:"GITHUB_USER"`
	WebURL     string        `help:"GitHub web URL used for git clones" env:"GITHUB_SERVER_URL" default:"https://github.com"`
	Workers    int           `help:"Concurrent downloads per extension" env:"LETTERCOUNT_WORKERS" default:"8"`

	// Internal fields (not flags)
	newSource sourceFactory `kong:"-"`
	stdout    io.Writer     `kong:"-"`
}

// Run executes the count command
func (c *CountCmd) Run(ctx context.Context) error {
	start := time.Now()

	cfg, err := c.buildConfig()
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logging.Logger.Info("Counting letters",
		"repo", cfg.Repo.String(),
		"source", cfg.Source,
		"extensions", cfg.Extensions,
		"workers", cfg.Workers)

	container, err := NewContainer(ctx, cfg, c.newSource)
	if err != nil {
		return err
	}

	histogram, err := container.HistogramService.Build(ctx, cfg.Root)
	if err != nil {
		return errors.Wrapf(err, "failed to count letters in %s", cfg.Repo)
	}

	elapsed := time.Since(start)
	out := c.output()

	switch c.Format {
	case "chart":
		if _, err := fmt.Fprint(out, ui.RenderChart(cfg.Repo.String(), histogram)); err != nil {
			return err
		}
	default:
		if err := ui.RenderList(out, histogram); err != nil {
			return err
		}
	}

	return ui.RenderElapsed(out, elapsed)
}

// buildConfig turns flags into a validated Config
func (c *CountCmd) buildConfig() (config.Config, error) {
	cfg := config.Default()

	repository := c.Repository
	if repository == "" {
		repository = config.DefaultRepository
	}
	repo, err := domain.ParseRepoSource(repository)
	if err != nil {
		return config.Config{}, err
	}
	if c.Ref != "" {
		repo.Ref = c.Ref
	}
	cfg.Repo = repo

	cfg.BaseURL = c.BaseURL
	cfg.Credentials = config.Credentials{
		Token:    c.Token,
		Username: c.Username,
	}
	if exts := config.NormalizeExtensions(c.Extensions); len(exts) > 0 {
		cfg.Extensions = exts
	}
	cfg.Root = c.Path
	if c.Source != "" {
		cfg.Source = c.Source
	}
	cfg.Timeout = c.Timeout
	if c.WebURL != "" {
		cfg.WebHost = c.WebURL
	}
	cfg.Workers = c.Workers

	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *CountCmd) output() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}
