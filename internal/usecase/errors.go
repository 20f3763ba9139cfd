package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPreconditionFailed    = errors.New("precondition failed")
	ErrScrapeFailed          = errors.New("scrape failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
