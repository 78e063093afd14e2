// Package provider implements the external translation backends and the
// ordered chain that queries them. Every backend failure is contained here:
// the chain reports absence instead of propagating errors, and the
// orchestrator falls back to a user-visible message.
package provider

import (
	"context"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// Provider defines the interface for translation backends.
type Provider interface {
	// Translate translates text from src to tgt. An error means "no
	// result from this backend"; the chain proceeds to the next one.
	Translate(ctx context.Context, text string, src, tgt language.Language) (string, error)

	// Name returns the provider name.
	Name() string
}

// Error represents a failure reported by a translation backend.
type Error struct {
	Provider string
	Code     string
	Message  string
}

func (e *Error) Error() string {
	return e.Provider + ": " + e.Message
}

// RateLimitError indicates that a backend's rate limit has been exceeded.
type RateLimitError struct {
	Provider   string
	RetryAfter int // Seconds to wait before retry
}

func (e *RateLimitError) Error() string {
	return e.Provider + ": rate limit exceeded"
}
