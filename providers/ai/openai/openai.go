package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/amarathe84/ChARGe/internal/utils"
	"github.com/amarathe84/ChARGe/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Provider implements the [ai.Provider] interface against the OpenAI chat
// completions API. Any server speaking the same protocol works too; pointing
// WithBaseURL at a vLLM instance is the primary use in this repository.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewProvider creates a provider configured from the environment:
// OPENAI_API_KEY for authentication and OPENAI_API_BASE_URL for the endpoint
// (defaulting to the public OpenAI API).
func NewProvider() *Provider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the Provider interface. Provider-specific parameters
// from request.ExtraBody are merged into the outgoing JSON body verbatim, so
// settings like vLLM's reasoning_effort pass straight through.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	body, err := buildRequestBody(request)
	if err != nil {
		return nil, err
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, body)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from chat completions API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return chatCompletionToGeneric(*resp), nil
}

// IsStopMessage reports whether the given chat response should be treated as a stop/end signal.
func (p *Provider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	// Prefer explicit finish reason from API
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	// If there's no content and no tool calls, treat as stop
	if !message.HasContent() && len(message.ToolCalls) == 0 {
		return true
	}
	return false
}

// buildRequestBody converts the generic request to the wire format. When
// ExtraBody parameters are present the struct is flattened into a map first
// so the extra keys sit at the top level of the JSON body, which is where
// vLLM expects them.
func buildRequestBody(request ai.ChatRequest) (any, error) {
	wireRequest := requestToChatCompletion(request)
	if len(request.ExtraBody) == 0 {
		return wireRequest, nil
	}

	encoded, err := json.Marshal(wireRequest)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(encoded, &body); err != nil {
		return nil, fmt.Errorf("error flattening request: %w", err)
	}

	for key, value := range request.ExtraBody {
		body[key] = value
	}

	return body, nil
}
