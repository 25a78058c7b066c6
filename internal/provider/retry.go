package provider

import (
	"context"
	"math/rand"
	"time"
)

// RetryPolicy retries an operation with exponential backoff. Only failures
// the classifier accepts are retried; everything else escalates immediately.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      float64 // fraction of the delay randomized, e.g. 0.2
	Retryable   func(error) bool
}

// DefaultRetryPolicy retries TRANSIENT acquisition failures.
func DefaultRetryPolicy(maxAttempts int, baseDelay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Jitter:      0.2,
		Retryable:   IsTransient,
	}
}

// Do runs op until it succeeds, fails with a non-retryable error, or the
// attempt budget is exhausted. The delay doubles after each failed attempt.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		sleep := delay
		if p.Jitter > 0 {
			sleep += time.Duration(rand.Float64() * p.Jitter * float64(delay))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		delay *= 2
	}
	return err
}
