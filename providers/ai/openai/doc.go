// Package openai implements the ai.Provider interface against the OpenAI
// chat completions protocol. vLLM servers expose the same protocol, so this
// package doubles as the vLLM backend: point WithBaseURL at the server and
// pass reasoning parameters through ChatRequest.ExtraBody.
package openai
