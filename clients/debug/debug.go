package debug

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/amarathe84/ChARGe/providers/ai"
)

// CallRecord captures the outcome of one intercepted call. Records are
// immutable after creation and live as long as the Client that owns them.
type CallRecord struct {
	CallID     int
	Response   *ai.ChatResponse
	HasContent bool
	HasThought bool
}

// Client is an [ai.Provider] decorator that frames every request/response
// exchange in fixed-width box-drawing log blocks and keeps an in-memory
// history of call outcomes. It is purely observational: the delegate is
// called exactly once per SendMessage, its response is returned unchanged,
// and its errors propagate unmodified.
//
// The mutex serializes intercepted calls so frames never interleave on the
// shared writer and call identifiers stay dense.
type Client struct {
	delegate ai.Provider
	out      io.Writer

	mu        sync.Mutex
	callCount int
	history   []CallRecord
}

var _ ai.Provider = (*Client)(nil)

// Option configures a Client during construction.
type Option func(*Client)

// WithWriter redirects the framed log blocks. The default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

// New wraps delegate with framed request/response logging.
func New(delegate ai.Provider, opts ...Option) *Client {
	c := &Client{
		delegate: delegate,
		out:      os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage logs a framed request block, delegates, logs a framed response
// block, and appends a CallRecord. On delegate failure the error is returned
// as-is and no record is appended; the call identifier is still consumed.
func (c *Client) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.callCount++
	callID := c.callCount

	c.writeRequestFrame(callID, request)

	response, err := c.delegate.SendMessage(ctx, request)
	if err != nil {
		return nil, err
	}

	c.writeResponseFrame(callID, response)

	c.history = append(c.history, CallRecord{
		CallID:     callID,
		Response:   response,
		HasContent: response.HasContent(),
		HasThought: response.HasReasoning(),
	})
	return response, nil
}

// IsStopMessage defers to the delegate.
func (c *Client) IsStopMessage(message *ai.ChatResponse) bool {
	return c.delegate.IsStopMessage(message)
}

// WithAPIKey configures the delegate and returns the wrapper.
func (c *Client) WithAPIKey(apiKey string) ai.Provider {
	c.delegate = c.delegate.WithAPIKey(apiKey)
	return c
}

// WithBaseURL configures the delegate and returns the wrapper.
func (c *Client) WithBaseURL(baseURL string) ai.Provider {
	c.delegate = c.delegate.WithBaseURL(baseURL)
	return c
}

// WithHttpClient configures the delegate and returns the wrapper.
func (c *Client) WithHttpClient(httpClient *http.Client) ai.Provider {
	c.delegate = c.delegate.WithHttpClient(httpClient)
	return c
}

// CallCount returns the number of intercepted calls so far, including calls
// whose delegate failed.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// Records returns a copy of the call history.
func (c *Client) Records() []CallRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CallRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Reset clears the history and the call counter.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callCount = 0
	c.history = nil
}

func (c *Client) writeRequestFrame(callID int, request ai.ChatRequest) {
	var b strings.Builder
	b.WriteString("\n" + frameTop + "\n")
	fmt.Fprintf(&b, "║ vLLM API CALL #%03d - REQUEST%s║\n", callID, strings.Repeat(" ", 70))
	b.WriteString(frameHeaderRule + "\n")

	model := request.Model
	if model == "" {
		model = "N/A"
	}
	fmt.Fprintf(&b, "║ Model: %-91s ║\n", model)
	fmt.Fprintf(&b, "║ Messages: %d message(s)%s║\n", len(request.Messages), strings.Repeat(" ", 73))

	if len(request.ExtraBody) > 0 {
		b.WriteString("║ Extra body parameters:" + strings.Repeat(" ", 75) + "║\n")
		keys := make([]string, 0, len(request.ExtraBody))
		for key := range request.ExtraBody {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "║   %s: %-86s ║\n", key, request.ExtraBody[key])
		}
	}

	b.WriteString(frameBottom + "\n\n")
	io.WriteString(c.out, b.String())
}

func (c *Client) writeResponseFrame(callID int, response *ai.ChatResponse) {
	var b strings.Builder
	b.WriteString("\n" + frameTop + "\n")
	fmt.Fprintf(&b, "║ vLLM API CALL #%03d - RESPONSE (ChatResponse)%s║\n", callID, strings.Repeat(" ", 52))
	b.WriteString(frameHeaderRule + "\n")

	if response.HasContent() {
		b.WriteString("║ CONTENT (Final Answer Channel):" + strings.Repeat(" ", 65) + "║\n")
		b.WriteString(frameSectionRule + "\n")

		if len(response.ContentParts) > 0 {
			for idx, item := range response.ContentParts {
				rows := wrapLine(item, indexedWrapWidth)
				fmt.Fprintf(&b, "║ [%d] %-91s ║\n", idx, rows[0])
				for _, row := range rows[1:] {
					fmt.Fprintf(&b, "║     %-91s ║\n", row)
				}
			}
		} else {
			for _, row := range wrapBlock(response.Content, contentWrapWidth) {
				fmt.Fprintf(&b, "║ %-96s ║\n", row)
			}
		}
	}

	if response.HasReasoning() {
		b.WriteString(frameSectionRule + "\n")
		b.WriteString("║ THOUGHT (Reasoning Channel):" + strings.Repeat(" ", 68) + "║\n")
		b.WriteString(frameSectionRule + "\n")
		for _, row := range wrapBlock(response.Reasoning, contentWrapWidth) {
			fmt.Fprintf(&b, "║ %-96s ║\n", row)
		}
	}

	if response.Usage != nil {
		b.WriteString(frameSectionRule + "\n")
		b.WriteString("║ USAGE STATISTICS:" + strings.Repeat(" ", 80) + "║\n")
		fmt.Fprintf(&b, "║   Prompt tokens: %-82d ║\n", response.Usage.PromptTokens)
		fmt.Fprintf(&b, "║   Completion tokens: %-78d ║\n", response.Usage.CompletionTokens)
		fmt.Fprintf(&b, "║   Total tokens: %-83d ║\n", response.Usage.TotalTokens)
	}

	b.WriteString(frameSectionRule + "\n")
	fmt.Fprintf(&b, "║ Finish reason: %-82s ║\n", response.FinishReason)

	b.WriteString(frameBottom + "\n\n")
	io.WriteString(c.out, b.String())
}
