package resilience

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var errPermanent = crerr.New("permanent failure")

// MarkPermanent flags err so Retry returns it immediately and breakers ignore it.
func MarkPermanent(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, errPermanent)
}

func IsPermanent(err error) bool {
	return err != nil && crerr.Is(err, errPermanent)
}

// RetryFunc is one attempt. attempt starts at 1.
type RetryFunc func(ctx context.Context, attempt int) error

// RetryObserver is told about every failed attempt that will be retried.
type RetryObserver func(attempt int, err error, wait time.Duration)

// Retry runs fn until it succeeds, returns a permanent error, or MaxAttempts is
// reached. A timed-out attempt is an ordinary failure. The returned error wraps
// the last attempt's error.
func Retry(ctx context.Context, cfg RetryConfig, fn RetryFunc, observe RetryObserver) error {
	cfg = NormalizeRetryConfig(cfg)

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return crerr.WithSecondaryError(crerr.Wrapf(lastErr, "attempt %d/%d", attempt-1, cfg.MaxAttempts), err)
			}
			return err
		}

		lastErr = runAttempt(ctx, cfg.AttemptTimeout, attempt, fn)
		if lastErr == nil {
			return nil
		}
		if IsPermanent(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		if observe != nil {
			observe(attempt, lastErr, cfg.Delay)
		}
		if err := sleep(ctx, cfg.Delay); err != nil {
			return crerr.WithSecondaryError(crerr.Wrapf(lastErr, "attempt %d/%d", attempt, cfg.MaxAttempts), err)
		}
	}

	return crerr.Wrapf(lastErr, "attempt %d/%d", cfg.MaxAttempts, cfg.MaxAttempts)
}

func runAttempt(ctx context.Context, timeout time.Duration, attempt int, fn RetryFunc) error {
	if timeout <= 0 {
		return fn(ctx, attempt)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(attemptCtx, attempt)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
