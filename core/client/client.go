package client

import (
	"context"
	"fmt"

	"github.com/amarathe84/ChARGe/providers/ai"
	"github.com/amarathe84/ChARGe/providers/tool"
)

const defaultMaxToolCallIterations = 10

// Client drives a multi-turn conversation against an [ai.Provider], running
// tool calls requested by the model until it produces a terminal response.
// Requests pass through the configured middleware chain on their way to the
// provider.
//
// A Client holds conversation state and is intended for the single-task-per-
// process usage this repository exercises; it is not safe for concurrent use.
type Client struct {
	provider              ai.Provider
	middlewares           []Middleware
	chain                 SendFunc
	messages              []ai.Message
	systemPrompt          string
	model                 string
	generationConfig      *ai.GenerationConfig
	extraBody             map[string]string
	catalog               *tool.Catalog
	maxToolCallIterations int
}

// Option configures a Client during construction.
type Option func(*Client)

// WithSystemPrompt sets the system prompt attached to every request.
func WithSystemPrompt(prompt string) Option {
	return func(c *Client) { c.systemPrompt = prompt }
}

// WithModel sets the model identifier attached to every request.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTools registers tools the model may call during the conversation.
func WithTools(tools ...tool.GenericTool) Option {
	return func(c *Client) { c.catalog.AddTools(tools...) }
}

// WithGenerationConfig sets sampling parameters for every request.
func WithGenerationConfig(config *ai.GenerationConfig) Option {
	return func(c *Client) { c.generationConfig = config }
}

// WithExtraBody sets provider-specific parameters merged into every request
// body (e.g. reasoning_effort for vLLM).
func WithExtraBody(extra map[string]string) Option {
	return func(c *Client) { c.extraBody = extra }
}

// WithMiddleware appends middlewares to the chain, outermost-first.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Client) { c.middlewares = append(c.middlewares, middlewares...) }
}

// WithMaxToolCallIterations bounds the number of tool-call rounds in a single
// SendMessage exchange. The default is 10.
func WithMaxToolCallIterations(n int) Option {
	return func(c *Client) { c.maxToolCallIterations = n }
}

// New constructs a Client over the given provider. The provider must not be
// nil; options are applied in order.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	c := &Client{
		provider:              provider,
		catalog:               tool.NewCatalog(),
		maxToolCallIterations: defaultMaxToolCallIterations,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.chain = buildSendChain(provider, c.middlewares)
	return c, nil
}

// SendMessage appends content as a user message and runs the conversation
// until the provider signals a terminal response, dispatching tool calls in
// between. The final response is returned unchanged; provider errors
// propagate unmodified.
func (c *Client) SendMessage(ctx context.Context, content string) (*ai.ChatResponse, error) {
	c.appendMessage(ai.Message{Role: ai.RoleUser, Content: content})

	toolCallIterations := 0
	for {
		response, err := c.chain(ctx, ai.ChatRequest{
			Model:            c.model,
			SystemPrompt:     c.systemPrompt,
			Messages:         c.messages,
			Tools:            c.catalog.Descriptions(),
			GenerationConfig: c.generationConfig,
			ExtraBody:        c.extraBody,
		})
		if err != nil {
			return nil, err
		}

		c.appendMessage(ai.Message{
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		if len(response.ToolCalls) > 0 {
			toolCallIterations++
			if toolCallIterations > c.maxToolCallIterations {
				return response, fmt.Errorf("exceeded %d tool call iterations", c.maxToolCallIterations)
			}

			for _, tc := range response.ToolCalls {
				c.appendMessage(c.dispatchToolCall(ctx, tc))
			}
			continue
		}

		if c.provider.IsStopMessage(response) {
			return response, nil
		}
	}
}

// Messages returns a copy of the conversation so far, excluding the system
// prompt.
func (c *Client) Messages() []ai.Message {
	out := make([]ai.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// dispatchToolCall runs a single tool call and converts the outcome (success,
// unknown tool, or execution failure) into a tool-role message. Tool failures
// are reported back to the model rather than aborting the conversation.
func (c *Client) dispatchToolCall(ctx context.Context, tc ai.ToolCall) ai.Message {
	message := ai.Message{
		Role:       ai.RoleTool,
		ToolCallID: tc.ID,
		Name:       tc.Function.Name,
	}

	registered, ok := c.catalog.Get(tc.Function.Name)
	if !ok {
		message.Content = mustToolResultJSON(ai.NewToolResultError("tool_not_found",
			fmt.Sprintf("no tool named %q is registered", tc.Function.Name)))
		return message
	}

	output, err := registered.Call(ctx, tc.Function.Arguments)
	if err != nil {
		message.Content = mustToolResultJSON(ai.NewToolResultError("tool_execution_failed", err.Error()))
		return message
	}

	message.Content = output
	return message
}

func (c *Client) appendMessage(message ai.Message) {
	c.messages = append(c.messages, message)
}

// mustToolResultJSON renders a ToolResult, falling back to the plain message
// text if marshaling ever fails.
func mustToolResultJSON(result ai.ToolResult) string {
	encoded, err := result.ToJSON()
	if err != nil {
		return result.Message
	}
	return encoded
}
