package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   time.Millisecond,
		Retryable:   IsTransient,
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	// two TRANSIENT failures, then success: the call succeeds with
	// exactly 3 attempts recorded
	attempts := 0
	err := testPolicy(3).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return &AcquisitionError{Kind: KindTransient, Err: errors.New("connection reset")}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := testPolicy(3).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return &AcquisitionError{Kind: KindTransient, Err: errors.New("gateway timeout")}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, KindTransient, KindOf(err))
}

func TestRetry_FatalNotRetried(t *testing.T) {
	attempts := 0
	err := testPolicy(3).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return &AcquisitionError{Kind: KindAuth, Err: errors.New("invalid token")}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, KindAuth, KindOf(err))
}

func TestRetry_QuotaNotRetried(t *testing.T) {
	attempts := 0
	err := testPolicy(3).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return &AcquisitionError{Kind: KindQuota, Err: errors.New("quota exceeded")}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	policy := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   50 * time.Millisecond,
		Retryable:   IsTransient,
	}
	err := policy.Do(ctx, func(ctx context.Context) error {
		attempts++
		cancel() // cancel while the policy is waiting between attempts
		return &AcquisitionError{Kind: KindTransient, Err: errors.New("flaky")}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&AcquisitionError{Kind: KindTransient, Err: errors.New("x")}))
	assert.False(t, IsTransient(&AcquisitionError{Kind: KindAuth, Err: errors.New("x")}))
	assert.False(t, IsTransient(errors.New("plain error")))
}
