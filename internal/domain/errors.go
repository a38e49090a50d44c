package domain

import "github.com/cockroachdb/errors"

var (
	ErrInvalidRepoSource = errors.New("invalid repository source")
	ErrNotAFile          = errors.New("path is not a file")
	ErrNotFound          = errors.New("path not found")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrUnauthorized      = errors.New("unauthorized")
)
