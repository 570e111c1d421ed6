// Package llm provides a chat-completion client with bounded retry.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// DefaultAPIKeyEnv is the environment variable read when no key is given.
const DefaultAPIKeyEnv = "OPENAI_API_KEY"

var (
	// ErrMissingAPIKey is returned when no API key could be resolved.
	ErrMissingAPIKey = errors.New("llm: API key not set")

	// ErrUnreachable is returned when every attempt to reach the model failed.
	ErrUnreachable = errors.New("llm: cannot reach model")
)

// Client sends a single user prompt to a model and returns the reply text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("llm: %s", e.Status)
	}
	return fmt.Sprintf("llm: %s: %s", e.Status, e.Body)
}

// ResolveAPIKey returns explicit when set, otherwise the value of envVar.
// An empty envVar falls back to DefaultAPIKeyEnv.
func ResolveAPIKey(explicit, envVar string) string {
	if explicit != "" {
		return explicit
	}
	if envVar == "" {
		envVar = DefaultAPIKeyEnv
	}
	return os.Getenv(envVar)
}
