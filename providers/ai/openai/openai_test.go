package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amarathe84/ChARGe/providers/ai"
)

func newTestProvider(url string) *Provider {
	p := &Provider{client: &http.Client{}}
	p.WithAPIKey("test-key")
	p.WithBaseURL(url)
	return p
}

func TestSendMessage_ParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1710000000,
			"model": "test-model",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Hello"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	resp, err := newTestProvider(server.URL).SendMessage(context.Background(), ai.ChatRequest{
		Model:    "test-model",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != "Hello" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("unexpected finish reason: %q", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestSendMessage_ReasoningContentChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "chatcmpl-2",
			"model": "test-model",
			"choices": [{
				"message": {"role": "assistant", "content": "CCO", "reasoning_content": "ethanol is a safe pick"},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer server.Close()

	resp, err := newTestProvider(server.URL).SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "suggest a molecule"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != "CCO" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.Reasoning != "ethanol is a safe pick" {
		t.Errorf("unexpected reasoning: %q", resp.Reasoning)
	}
}

func TestSendMessage_ExtraBodyMergedIntoRequest(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"id":"x","model":"m","choices":[{"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).SendMessage(context.Background(), ai.ChatRequest{
		Model:     "m",
		Messages:  []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		ExtraBody: map[string]string{"reasoning_effort": "high"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received["reasoning_effort"] != "high" {
		t.Errorf("expected reasoning_effort passed through, got body %v", received)
	}
	if received["model"] != "m" {
		t.Errorf("expected model preserved alongside extra body, got %v", received)
	}
}

func TestSendMessage_SystemPromptPrepended(t *testing.T) {
	var received chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"id":"x","model":"m","choices":[{"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).SendMessage(context.Background(), ai.ChatRequest{
		SystemPrompt: "You are a chemist.",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(received.Messages))
	}
	if received.Messages[0].Role != "system" || received.Messages[0].Content != "You are a chemist." {
		t.Errorf("unexpected first message: %+v", received.Messages[0])
	}
}

func TestSendMessage_HTTPErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestSplitThinkTags(t *testing.T) {
	answer, reasoning := splitThinkTags("<think>weigh the options</think>CCO")
	if answer != "CCO" {
		t.Errorf("unexpected answer: %q", answer)
	}
	if reasoning != "weigh the options" {
		t.Errorf("unexpected reasoning: %q", reasoning)
	}

	answer, reasoning = splitThinkTags("no tags here")
	if answer != "no tags here" || reasoning != "" {
		t.Errorf("unexpected split: %q / %q", answer, reasoning)
	}
}

func TestIsStopMessage(t *testing.T) {
	p := &Provider{}

	if !p.IsStopMessage(nil) {
		t.Error("nil response should stop")
	}
	if !p.IsStopMessage(&ai.ChatResponse{FinishReason: "stop", Content: "done"}) {
		t.Error("finish_reason=stop should stop")
	}
	if p.IsStopMessage(&ai.ChatResponse{
		FinishReason: "tool_calls",
		ToolCalls:    []ai.ToolCall{{Type: "function"}},
	}) {
		t.Error("pending tool calls should not stop")
	}
	if !p.IsStopMessage(&ai.ChatResponse{}) {
		t.Error("no content and no tool calls should stop")
	}
}
