// Package middleware provides ready-made middlewares for the client send
// chain: structured request/response logging, retry with exponential backoff,
// and per-request timeouts.
package middleware
