package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retry defaults: three attempts, waiting 2s then 4s between them.
const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
)

// Retrying wraps a Client and retries failed completions with a linearly
// growing delay. After attempt n fails it waits n*delay.
type Retrying struct {
	next        Client
	maxAttempts int
	delay       time.Duration
	logger      *slog.Logger
}

// RetryOption configures a Retrying client.
type RetryOption func(*Retrying)

// WithMaxAttempts sets the total number of attempts, including the first.
func WithMaxAttempts(n int) RetryOption {
	return func(r *Retrying) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithRetryDelay sets the delay step of the linear backoff.
func WithRetryDelay(d time.Duration) RetryOption {
	return func(r *Retrying) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithLogger sets the logger that receives one warning per failed attempt.
func WithLogger(l *slog.Logger) RetryOption {
	return func(r *Retrying) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRetrying wraps next with the default retry policy.
func NewRetrying(next Client, opts ...RetryOption) *Retrying {
	r := &Retrying{
		next:        next,
		maxAttempts: DefaultMaxAttempts,
		delay:       DefaultRetryDelay,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// backoff returns a fresh schedule for one Complete call.
func (r *Retrying) backoff() retry.Backoff {
	var n int64
	linear := retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return time.Duration(n) * r.delay, false
	})
	return retry.WithMaxRetries(uint64(r.maxAttempts-1), linear)
}

// Complete calls the wrapped client until it succeeds or attempts run out.
// A missing API key or a done context is returned as is, without retry.
func (r *Retrying) Complete(ctx context.Context, prompt string) (string, error) {
	var (
		reply   string
		attempt int
	)

	err := retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		attempt++
		out, err := r.next.Complete(ctx, prompt)
		if err == nil {
			reply = out
			return nil
		}
		if errors.Is(err, ErrMissingAPIKey) || ctx.Err() != nil {
			return err
		}
		r.logger.Warn("chat completion failed",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"error", err)
		return retry.RetryableError(err)
	})
	if err == nil {
		return reply, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return "", err
	}
	return "", fmt.Errorf("%w after %d attempts: %w", ErrUnreachable, attempt, err)
}
