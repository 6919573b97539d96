// Package llm abstracts the external text-generation capability the debate
// depends on. The core only needs "generate text from a prompt"; this
// package provides that as an interface plus an OpenAI-compatible HTTP
// implementation.
package llm

import (
	"context"
	"fmt"
)

// Client generates text from a prompt. Calls are blocking request/response
// with no retry or backoff; implementations must be safe for reuse across
// sequential calls.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenerationError wraps any transport or provider failure from a generation
// call, so callers can distinguish "the model backend broke" from defects
// in their own logic.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("llm: %s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
