// Package logging provides the slog handler example drivers install: a
// timestamped, level-prefixed single-line format written to standard error,
// distinct from the raw framed blocks emitted by the debug client.
package logging
