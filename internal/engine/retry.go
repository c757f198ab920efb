package engine

import (
	"context"
	"time"

	"github.com/dm/ringside/internal/model"
)

// Compiled-in retry schedule: 1s, 2s, 4s between attempts 1→2, 2→3, 3→4.
// Deliberately deterministic; no jitter.
const (
	maxRetryAttempts = 3
	baseRetryDelay   = 1 * time.Second
)

// StatusFetcher performs one fetch attempt. It must honour ctx cancellation
// and may fail; the retry layer above it decides whether to try again.
type StatusFetcher func(ctx context.Context) (*model.HealthSnapshot, error)

// sleepFunc suspends for d or until ctx is done, returning ctx.Err() in the
// latter case. Swapped out in tests to make the backoff schedule observable.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fetchWithRetry runs one logical fetch with bounded exponential backoff.
// A success on any attempt returns immediately, discarding the remaining
// budget. After maxRetries consecutive failures the final error is returned
// as a Failure outcome; the loop never runs unbounded.
//
// The error return is non-nil only when ctx was cancelled, in which case the
// outcome is zero and must not be published: cancellation produces no
// outcome at all.
func fetchWithRetry(ctx context.Context, fetch StatusFetcher, maxRetries int, baseDelay time.Duration, sleep sleepFunc) (model.FetchOutcome, error) {
	var retries int
	delay := baseDelay

	for {
		if err := ctx.Err(); err != nil {
			return model.FetchOutcome{}, err
		}

		snap, err := fetch(ctx)
		if err == nil {
			return model.Success(snap, retries+1), nil
		}
		if ctx.Err() != nil {
			// The attempt failed because the session is going away.
			return model.FetchOutcome{}, ctx.Err()
		}
		if retries >= maxRetries {
			return model.Failure(err, retries+1), nil
		}

		if serr := sleep(ctx, delay); serr != nil {
			return model.FetchOutcome{}, serr
		}
		delay *= 2
		retries++
	}
}
