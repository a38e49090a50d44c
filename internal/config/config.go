package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/renato0307/lettercount/internal/domain"
)

// Source backends
const (
	SourceAPI = "api" // GitHub REST contents API
	SourceGit = "git" // Shallow in-memory git clone
)

// Defaults for the count command
const (
	DefaultAPIBaseURL = "https://api.github.com/"
	DefaultRepository = "lodash/lodash"
	DefaultWebHost    = "https://github.com"
	DefaultWorkers    = 8
)

// DefaultExtensions are the tracked source-file extensions, in report order
var DefaultExtensions = []string{".js", ".ts"}

// Credentials holds the identity used against the hosting service.
// Both fields are optional; anonymous access works for public repositories.
type Credentials struct {
	Token    string
	Username string
}

// Config is passed explicitly to every component at construction
type Config struct {
	BaseURL     string // REST API base URL; empty means github.com
	Credentials Credentials
	Extensions  []string
	Repo        domain.RepoSource
	Root        string        // Directory to start from; empty means repository root
	Source      string        // SourceAPI or SourceGit
	Timeout     time.Duration // Zero disables the overall deadline
	WebHost     string        // Web host used for clone URLs
	Workers     int           // Concurrent fetches per extension group
}

// Default returns a Config targeting DefaultRepository through the API
func Default() Config {
	repo, _ := domain.ParseRepoSource(DefaultRepository)
	return Config{
		Extensions: append([]string(nil), DefaultExtensions...),
		Repo:       repo,
		Source:     SourceAPI,
		WebHost:    DefaultWebHost,
		Workers:    DefaultWorkers,
	}
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if c.Repo.Owner == "" || c.Repo.Repo == "" {
		return errors.Wrap(domain.ErrInvalidRepoSource, "owner and repository are required")
	}
	if c.Workers < 1 {
		return errors.Newf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return errors.Newf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Source {
	case SourceAPI, SourceGit:
	default:
		return errors.Newf("unknown source %q (expected %s or %s)", c.Source, SourceAPI, SourceGit)
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	seen := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.Newf("extension %q must start with a dot", ext)
		}
		if seen[ext] {
			return errors.Newf("extension %q listed twice", ext)
		}
		seen[ext] = true
	}
	return nil
}

// NormalizeExtensions trims whitespace and adds a leading dot where missing.
// Empty items are dropped.
func NormalizeExtensions(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		result = append(result, ext)
	}
	return result
}
