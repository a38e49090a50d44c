package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoSource_SupportedForms(t *testing.T) {
	tests := []struct {
		input    string
		expected RepoSource
	}{
		{"lodash/lodash", RepoSource{Owner: "lodash", Repo: "lodash"}},
		{"lodash/lodash#main", RepoSource{Owner: "lodash", Repo: "lodash", Ref: "main"}},
		{"github.com/owner/repo", RepoSource{Owner: "owner", Repo: "repo"}},
		{"https://github.com/owner/repo", RepoSource{Owner: "owner", Repo: "repo"}},
		{"https://github.com/owner/repo.git", RepoSource{Owner: "owner", Repo: "repo"}},
		{"https://github.com/owner/repo/", RepoSource{Owner: "owner", Repo: "repo"}},
		{"http://ghe.example.com/owner/repo#v1.2.3", RepoSource{Owner: "owner", Repo: "repo", Ref: "v1.2.3"}},
		{"git@github.com:owner/repo.git", RepoSource{Owner: "owner", Repo: "repo"}},
		{"ssh://git@github.com/owner/repo.git", RepoSource{Owner: "owner", Repo: "repo"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseRepoSource(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseRepoSource_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"owner only", "lodash"},
		{"missing repo", "lodash/"},
		{"too many parts", "a/b/c/d"},
		{"url without repo", "https://github.com/lodash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRepoSource(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRepoSource)
		})
	}
}

func TestRepoSource_StringAndCloneURL(t *testing.T) {
	rs := RepoSource{Owner: "lodash", Repo: "lodash", Ref: "main"}

	assert.Equal(t, "lodash/lodash#main", rs.String())
	assert.Equal(t, "https://github.com/lodash/lodash.git", rs.CloneURL("https://github.com/"))
}
