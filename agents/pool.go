package agents

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amarathe84/ChARGe/clients/debug"
	"github.com/amarathe84/ChARGe/core/client"
	"github.com/amarathe84/ChARGe/core/client/middleware"
	"github.com/amarathe84/ChARGe/providers/ai"
	"github.com/amarathe84/ChARGe/providers/ai/openai"
	"github.com/amarathe84/ChARGe/providers/tool"
	"github.com/amarathe84/ChARGe/providers/tool/chem"
	"github.com/amarathe84/ChARGe/providers/tool/webfetch"
)

const (
	// BackendOpenAI targets the hosted OpenAI API.
	BackendOpenAI = "openai"
	// BackendVLLM targets a vLLM server speaking the OpenAI wire protocol.
	// The request carries a reasoning_effort hint in its extra body.
	BackendVLLM = "vllm"
)

const defaultRequestTimeout = 5 * time.Minute

// Pool constructs runnable agents bound to a model/backend pair. Every agent
// it creates talks to the backend through a debug-instrumented provider, so
// each exchange is framed on the debug writer and summarized at the end of a
// run.
type Pool struct {
	model           string
	backend         string
	logger          *slog.Logger
	debugWriter     io.Writer
	reasoningEffort string
	requestTimeout  time.Duration
}

// PoolOption configures a Pool during construction.
type PoolOption func(*Pool)

// WithLogger sets the logger used by the request middleware chain.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = logger }
}

// WithDebugWriter redirects the framed request/response blocks.
func WithDebugWriter(w io.Writer) PoolOption {
	return func(p *Pool) { p.debugWriter = w }
}

// WithReasoningEffort overrides the reasoning_effort hint sent to vLLM
// backends.
func WithReasoningEffort(effort string) PoolOption {
	return func(p *Pool) { p.reasoningEffort = effort }
}

// WithRequestTimeout bounds each completion request. The default is five
// minutes.
func WithRequestTimeout(timeout time.Duration) PoolOption {
	return func(p *Pool) { p.requestTimeout = timeout }
}

// NewPool builds a Pool for the given model and backend.
func NewPool(model, backend string, opts ...PoolOption) *Pool {
	p := &Pool{
		model:          model,
		backend:        backend,
		logger:         slog.Default(),
		debugWriter:    os.Stderr,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateAgent wires a task to a fully configured conversation client: the
// backend provider wrapped in debug instrumentation, retry/timeout/logging
// middleware, and the molecule plus web-fetch tools.
func (p *Pool) CreateAgent(task Task) (*Agent, error) {
	provider, extraBody, err := p.buildProvider()
	if err != nil {
		return nil, err
	}

	modelClient := debug.New(provider, debug.WithWriter(p.debugWriter))

	tools := append(chem.Tools(), tool.GenericTool(webfetch.NewWebFetchTool()))

	conversation, err := client.New(modelClient,
		client.WithModel(p.model),
		client.WithSystemPrompt(task.SystemPrompt),
		client.WithTools(tools...),
		client.WithExtraBody(extraBody),
		client.WithMiddleware(
			middleware.NewRetryMiddleware(middleware.RetryConfig{}),
			middleware.NewTimeoutMiddleware(p.requestTimeout),
			middleware.NewLoggingMiddleware(p.logger, middleware.LogLevelStandard),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating agent for model %q: %w", p.model, err)
	}

	return &Agent{
		task:        task,
		client:      conversation,
		modelClient: modelClient,
	}, nil
}

// buildProvider maps the backend selector to a provider. vLLM servers speak
// the OpenAI chat-completion protocol, so both backends share the same
// transport; vLLM additionally receives a reasoning_effort hint.
func (p *Pool) buildProvider() (ai.Provider, map[string]string, error) {
	switch p.backend {
	case BackendOpenAI, "":
		return openai.NewProvider(), nil, nil
	case BackendVLLM:
		effort := p.reasoningEffort
		if effort == "" {
			effort = "high"
		}
		return openai.NewProvider(), map[string]string{"reasoning_effort": effort}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend %q", p.backend)
	}
}
