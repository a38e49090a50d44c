package github

import (
	"net/http"

	"github.com/cockroachdb/errors"
	gogithub "github.com/google/go-github/v74/github"

	"github.com/renato0307/lettercount/internal/config"
)

// NewClient builds a GitHub REST client from the configuration.
// Username and token together use basic auth; a token alone is sent as a
// bearer token; no credentials means anonymous access.
func NewClient(cfg config.Config, userAgent string) (*gogithub.Client, error) {
	var httpClient *http.Client
	if cfg.Credentials.Username != "" && cfg.Credentials.Token != "" {
		transport := &gogithub.BasicAuthTransport{
			Username: cfg.Credentials.Username,
			Password: cfg.Credentials.Token,
		}
		httpClient = transport.Client()
	}

	client := gogithub.NewClient(httpClient)
	if httpClient == nil && cfg.Credentials.Token != "" {
		client = client.WithAuthToken(cfg.Credentials.Token)
	}

	if cfg.BaseURL != "" && cfg.BaseURL != config.DefaultAPIBaseURL {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GitHub base URL %q", cfg.BaseURL)
		}
	}

	if userAgent != "" {
		client.UserAgent = userAgent
	}

	return client, nil
}
