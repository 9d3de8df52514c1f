package middleware

import (
	"context"
	"time"

	"github.com/amarathe84/ChARGe/core/client"
	"github.com/amarathe84/ChARGe/providers/ai"
)

// NewTimeoutMiddleware creates a middleware that enforces a per-request
// deadline on provider calls. The context is wrapped with
// context.WithTimeout and automatically canceled once the provider returns
// or the deadline expires.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
