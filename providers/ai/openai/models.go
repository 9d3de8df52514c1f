package openai

import (
	"strings"

	"github.com/amarathe84/ChARGe/internal/jsonschema"
	"github.com/amarathe84/ChARGe/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	Temperature         *float64      `json:"temperature,omitempty"`
	TopP                *float64      `json:"top_p,omitempty"`
	MaxTokens           *int          `json:"max_tokens,omitempty"`            // Legacy, still accepted
	MaxCompletionTokens *int          `json:"max_completion_tokens,omitempty"` // Preferred
	ReasoningEffort     string        `json:"reasoning_effort,omitempty"`

	// Tool calling
	Tools      []chatTool  `json:"tools,omitempty"`
	ToolChoice interface{} `json:"tool_choice,omitempty"` // "auto", "none", "required", or object
}

type chatMessage struct {
	Role       string         `json:"role"`              // system, user, assistant, tool
	Content    string         `json:"content,omitempty"`
	Name       string         `json:"name,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"` // For role=tool
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`   // For role=assistant
}

type chatTool struct {
	Type     string       `json:"type"` // "function"
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Parameters  jsonschema.Schema `json:"parameters,omitempty"`
}

type chatToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // "function"
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"` // JSON string, parsed later with ParseStringAs
	} `json:"function"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "tool_calls", "content_filter"
}

type chatResponseMessage struct {
	Role      string         `json:"role"` // "assistant"
	Content   string         `json:"content,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`

	// ReasoningContent is the separate thinking channel emitted by vLLM when
	// a reasoning parser is enabled on the server.
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

type chatUsage struct {
	PromptTokens            int `json:"prompt_tokens"`
	CompletionTokens        int `json:"completion_tokens"`
	TotalTokens             int `json:"total_tokens"`
	CompletionTokensDetails *struct {
		ReasoningTokens int `json:"reasoning_tokens,omitempty"`
	} `json:"completion_tokens_details,omitempty"`
}

/*
	CONVERSION FUNCTIONS
*/

// requestToChatCompletion converts ai.ChatRequest to chat completions format
func requestToChatCompletion(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	// Convert messages, system prompt first
	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, msg := range request.Messages {
		chatMsg := chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}

		for _, tc := range msg.ToolCalls {
			toolCall := chatToolCall{
				ID:   tc.ID,
				Type: tc.Type,
			}
			toolCall.Function.Name = tc.Function.Name
			toolCall.Function.Arguments = tc.Function.Arguments
			chatMsg.ToolCalls = append(chatMsg.ToolCalls, toolCall)
		}

		if msg.ToolCallID != "" {
			chatMsg.ToolCallID = msg.ToolCallID
		}
		if msg.Name != "" {
			chatMsg.Name = msg.Name
		}

		req.Messages = append(req.Messages, chatMsg)
	}

	// Map GenerationConfig
	if request.GenerationConfig != nil {
		cfg := request.GenerationConfig

		if cfg.Temperature > 0 {
			temp := float64(cfg.Temperature)
			req.Temperature = &temp
		}

		if cfg.TopP > 0 {
			topP := float64(cfg.TopP)
			req.TopP = &topP
		}

		if cfg.MaxTokens > 0 {
			maxTokens := cfg.MaxTokens
			req.MaxCompletionTokens = &maxTokens
		}

		req.ReasoningEffort = cfg.ReasoningEffort
	}

	// Convert tools
	if len(request.Tools) > 0 {
		for _, tl := range request.Tools {
			chatTl := chatTool{
				Type: "function",
				Function: chatFunction{
					Name:        tl.Name,
					Description: tl.Description,
				},
			}
			if tl.Parameters != nil {
				chatTl.Function.Parameters = *tl.Parameters
			}
			req.Tools = append(req.Tools, chatTl)
		}
		req.ToolChoice = "auto"
	}

	return req
}

// chatCompletionToGeneric converts chat completion response to ai.ChatResponse
func chatCompletionToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      resp.ID,
		Model:   resp.Model,
		Object:  resp.Object,
		Created: resp.Created,
	}

	if len(resp.Choices) == 0 {
		result.FinishReason = "error"
		return result
	}

	choice := resp.Choices[0]
	content, reasoning := splitThinkTags(strings.TrimSpace(choice.Message.Content))

	// An explicit reasoning channel takes precedence over <think> extraction.
	if choice.Message.ReasoningContent != "" {
		reasoning = choice.Message.ReasoningContent
	}

	result.Content = content
	result.Reasoning = reasoning
	result.FinishReason = choice.FinishReason

	for _, tc := range choice.Message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, ai.ToolCall{
			ID:   tc.ID,
			Type: tc.Type,
			Function: ai.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}

	if resp.Usage != nil {
		usage := &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
		if resp.Usage.CompletionTokensDetails != nil {
			usage.ReasoningTokens = resp.Usage.CompletionTokensDetails.ReasoningTokens
		}
		result.Usage = usage
	}

	return result
}

// splitThinkTags separates <think>...</think> reasoning from the final-answer
// text. Models served without a reasoning parser embed their thinking this
// way inside the content body.
func splitThinkTags(content string) (answer, reasoning string) {
	const openTag, closeTag = "<think>", "</think>"

	start := strings.Index(content, openTag)
	if start < 0 {
		return content, ""
	}
	end := strings.Index(content, closeTag)
	if end < start {
		return content, ""
	}

	reasoning = strings.TrimSpace(content[start+len(openTag) : end])
	answer = strings.TrimSpace(content[:start] + content[end+len(closeTag):])
	return answer, reasoning
}
