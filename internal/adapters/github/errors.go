package github

import (
	"net/http"

	"github.com/cockroachdb/errors"
	gogithub "github.com/google/go-github/v74/github"

	"github.com/renato0307/lettercount/internal/domain"
)

// classify maps API failures onto domain sentinels, keeping the original
// error in the chain. Nothing is retried.
func classify(err error) error {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return errors.Mark(errors.Wrapf(err, "rate limit resets at %s", rateErr.Rate.Reset.Time), domain.ErrRateLimited)
	}

	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return errors.Mark(errors.Wrap(err, "secondary rate limit"), domain.ErrRateLimited)
	}

	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Mark(errors.Wrap(err, "not found"), domain.ErrNotFound)
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.Mark(errors.Wrap(err, "access denied"), domain.ErrUnauthorized)
		}
	}

	return errors.Wrap(err, "github request failed")
}
