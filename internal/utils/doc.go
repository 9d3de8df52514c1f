// Package utils provides small shared helpers for the rest of the module:
// a generic JSON-over-HTTP POST, string truncation, and safe JSON rendering
// for log output.
package utils
