// Package client provides the conversation-driving client used by agents:
// it sends messages through a composable middleware chain, dispatches the
// tool calls a model requests, and loops until the model produces a terminal
// response.
package client
