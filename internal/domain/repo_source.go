package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// RepoSource identifies the repository to analyse
type RepoSource struct {
	Owner string
	Ref   string // Branch, tag or commit; empty means the default branch
	Repo  string
}

// String returns owner/repo, with #ref appended when a ref is set
func (rs RepoSource) String() string {
	s := rs.Owner + "/" + rs.Repo
	if rs.Ref != "" {
		s += "#" + rs.Ref
	}
	return s
}

// CloneURL returns the https clone URL on the given web host (e.g. "https://github.com")
func (rs RepoSource) CloneURL(webHost string) string {
	return strings.TrimSuffix(webHost, "/") + "/" + rs.Owner + "/" + rs.Repo + ".git"
}

// ParseRepoSource parses a repository reference.
// Supported forms:
//   - owner/repo
//   - github.com/owner/repo
//   - https://github.com/owner/repo(.git)
//   - git@github.com:owner/repo(.git)
//   - ssh://git@github.com/owner/repo(.git)
//
// Any form may carry a ref as a URL fragment: owner/repo#branch-name
func ParseRepoSource(source string) (RepoSource, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return RepoSource{}, errors.Wrap(ErrInvalidRepoSource, "empty source")
	}

	var ref string
	if idx := strings.Index(source, "#"); idx >= 0 {
		ref = source[idx+1:]
		source = source[:idx]
	}

	clean := strings.TrimSuffix(strings.TrimSuffix(source, "/"), ".git")

	var ownerRepo string
	switch {
	case strings.HasPrefix(clean, "https://"), strings.HasPrefix(clean, "http://"):
		// https://github.com/owner/repo
		parts := strings.SplitN(clean, "://", 2)
		ownerRepo = lastTwo(strings.Split(parts[1], "/"), 3)
	case strings.HasPrefix(clean, "ssh://"):
		// ssh://git@github.com/owner/repo
		path := strings.TrimPrefix(clean, "ssh://")
		if idx := strings.Index(path, "@"); idx >= 0 {
			path = path[idx+1:]
		}
		ownerRepo = lastTwo(strings.Split(path, "/"), 3)
	case strings.HasPrefix(clean, "git@"):
		// git@github.com:owner/repo
		if idx := strings.Index(clean, ":"); idx >= 0 {
			ownerRepo = clean[idx+1:]
		}
	case strings.Count(clean, "/") == 2:
		// github.com/owner/repo
		ownerRepo = lastTwo(strings.Split(clean, "/"), 3)
	default:
		ownerRepo = clean
	}

	parts := strings.Split(ownerRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoSource{}, errors.Wrapf(ErrInvalidRepoSource, "cannot extract owner/repo from %q", source)
	}

	return RepoSource{
		Owner: parts[0],
		Ref:   ref,
		Repo:  parts[1],
	}, nil
}

// lastTwo joins the last two path components when at least minParts components exist
func lastTwo(parts []string, minParts int) string {
	if len(parts) < minParts {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
