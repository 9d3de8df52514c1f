// Package tool provides typed, schema-described tools that language models
// can invoke during a conversation, plus a thread-safe catalog for dispatch
// by name.
package tool
