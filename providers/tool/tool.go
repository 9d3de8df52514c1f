package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/amarathe84/ChARGe/core/parse"
	"github.com/amarathe84/ChARGe/internal/jsonschema"
	"github.com/amarathe84/ChARGe/providers/ai"
)

// Tool represents a typed, callable tool that can be registered with an AI provider.
// It binds a name and description to a strongly-typed Go function, and automatically
// derives JSON schemas for both input (I) and output (O) via reflection.
// Use [NewTool] to construct a Tool; implement [GenericTool] for provider-agnostic usage.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// GenericTool is the provider-agnostic interface for all tools.
// It abstracts over the concrete generic type parameters of [Tool] so that tools
// can be stored, dispatched, and introspected without knowing their exact input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, parameter schema) used to
	// advertise this tool to an AI provider.
	ToolInfo() ai.ToolDescription

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution fails.
	Call(ctx context.Context, inputJson string) (string, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
}

// WithDescription sets a human-readable description for the tool.
// Providers surface this description to the language model to help it decide
// when and how to invoke the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// JSON schemas for the input type I and output type O are derived automatically
// via reflection. An optional description can be provided through [WithDescription].
//
// Example:
//
//	priceTool := tool.NewTool("get_molecule_price", quotePrice,
//	    tool.WithDescription("Quotes the catalog price of a molecule in USD."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
	}
}

// ToolInfo returns the [ai.ToolDescription] used to advertise this tool to an AI provider.
func (t *Tool[I, O]) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded input.
// It deserializes inputJson into the tool's input type I (repairing malformed
// model-emitted JSON when needed), executes the function, and returns the
// result serialized as JSON. Returns an error if JSON parsing, function
// execution, or output marshaling fails.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	parsedInput, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		return "", err
	}

	start := time.Now()
	output, err := t.Function(ctx, parsedInput)
	if err != nil {
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", err
	}

	slog.Debug("tool executed",
		"tool", t.Name,
		"duration", time.Since(start),
	)

	return string(outputBytes), nil
}
