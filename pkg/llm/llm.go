package llm

import (
	"context"
	"fmt"
)

// LLM sends a single-turn prompt and returns the reply text.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	GetModel() string
}

// ErrorKind classifies a failed chat request.
type ErrorKind string

const (
	// KindStatus is a response with a non-success HTTP status.
	KindStatus ErrorKind = "status"
	// KindTransport covers network failures and timeouts.
	KindTransport ErrorKind = "transport"
	// KindEmpty is a success response without any choices.
	KindEmpty ErrorKind = "empty"
)

// Error is returned by Chat for every failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("API responded with %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("API responded with %d", e.StatusCode)
	case KindTransport:
		return fmt.Sprintf("API request failed: %s", e.Message)
	default:
		return fmt.Sprintf("API returned no content: %s", e.Message)
	}
}
