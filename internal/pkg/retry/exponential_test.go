package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(retries int) Config {
	return Config{MaxRetries: retries, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_Execute(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		retries   int
		wantCalls int
		wantErr   bool
	}{
		{name: "first attempt succeeds", failures: 0, retries: 2, wantCalls: 1},
		{name: "succeeds after retry", failures: 2, retries: 2, wantCalls: 3},
		{name: "budget exhausted", failures: 5, retries: 2, wantCalls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := New(fastConfig(tt.retries), nil)

			err := r.Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return errors.New("upstream 503")
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.ErrorContains(t, err, "retry limit exceeded after 3 attempts")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_PermanentErrorStopsImmediately(t *testing.T) {
	sentinel := errors.New("bad request")
	calls := 0

	err := New(fastConfig(5), nil).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return Permanent(sentinel)
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, sentinel)
}

func TestRetrier_RetryableFunc(t *testing.T) {
	cfg := fastConfig(5)
	cfg.RetryableFunc = func(err error) bool { return false }
	calls := 0

	err := New(cfg, nil).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("nope")
	})

	assert.Equal(t, 1, calls)
	assert.EqualError(t, err, "nope")
}

func TestRetrier_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fastConfig(3), nil).Execute(ctx, func(ctx context.Context) error {
		t.Fatal("must not be called")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetrier_CalculateDelayCapped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
