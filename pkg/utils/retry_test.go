package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{name: "first try", failures: nil, wantCalls: 1},
		{name: "succeeds on third", failures: []error{errTemporary, errTemporary}, wantCalls: 3},
		{name: "gives up", failures: []error{errTemporary, errTemporary, errTemporary, errTemporary}, wantCalls: 3, wantErr: errTemporary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func() error {
		calls++
		return errors.New("boom")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
