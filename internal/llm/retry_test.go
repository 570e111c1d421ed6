package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leapstack-labs/schemastrip/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("connection reset")

// scriptedClient fails the first failures calls, then returns reply.
type scriptedClient struct {
	failures int
	err      error
	reply    string
	calls    int
}

func (c *scriptedClient) Complete(_ context.Context, _ string) (string, error) {
	c.calls++
	if c.calls <= c.failures {
		return "", c.err
	}
	return c.reply, nil
}

func TestRetrying_Backoff(t *testing.T) {
	r := NewRetrying(&scriptedClient{})
	b := r.backoff()

	d, stop := b.Next()
	assert.False(t, stop)
	assert.Equal(t, 2*time.Second, d)

	d, stop = b.Next()
	assert.False(t, stop)
	assert.Equal(t, 4*time.Second, d)

	_, stop = b.Next()
	assert.True(t, stop, "three attempts allow only two waits")
}

func TestRetrying_Complete(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{name: "first attempt succeeds", failures: 0, wantCalls: 1},
		{name: "succeeds on last attempt", failures: 2, wantCalls: 3},
		{name: "all attempts fail", failures: 5, wantCalls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewCaptureLogger()
			next := &scriptedClient{failures: tt.failures, err: errFlaky, reply: "ok"}
			r := NewRetrying(next, WithRetryDelay(time.Millisecond), WithLogger(logger))

			reply, err := r.Complete(context.Background(), "prompt")

			assert.Equal(t, tt.wantCalls, next.calls)
			assert.Equal(t, min(tt.failures, 3), logs.Count("chat completion failed"))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnreachable)
				assert.ErrorIs(t, err, errFlaky)
				assert.Contains(t, err.Error(), "after 3 attempts")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", reply)
		})
	}
}

func TestRetrying_MissingKeyIsNotRetried(t *testing.T) {
	next := &scriptedClient{failures: 10, err: ErrMissingAPIKey}
	r := NewRetrying(next, WithRetryDelay(time.Millisecond))

	_, err := r.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.NotErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 1, next.calls)
}

func TestRetrying_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next := &scriptedClient{failures: 10, err: errFlaky}
	_, err := NewRetrying(next).Complete(ctx, "prompt")

	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, next.calls, 1)
}

func TestRetrying_MaxAttempts(t *testing.T) {
	next := &scriptedClient{failures: 10, err: errFlaky}
	r := NewRetrying(next, WithMaxAttempts(1), WithRetryDelay(time.Hour))

	_, err := r.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 1, next.calls)
}
