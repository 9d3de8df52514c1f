package ai

import (
	"context"
	"net/http"
)

// Provider is the core interface that every LLM provider implementation must
// satisfy. It covers the full lifecycle of a single request: authentication,
// endpoint configuration, message dispatch, and response interpretation.
//
// Decorators (for example the debug-instrumented client in clients/debug)
// also implement Provider, holding a reference to the backend they wrap and
// calling through to it. Anything that talks to a Provider therefore composes
// transparently with instrumentation.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// IsStopMessage reports whether the response represents a terminal
	// completion (i.e. the model has nothing more to say and no further
	// tool calls are expected). Providers use their own finish-reason
	// semantics to implement this check.
	IsStopMessage(message *ChatResponse) bool

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
