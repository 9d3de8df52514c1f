package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const timestampLayout = "2006-01-02 15:04:05"

// Handler is a slog.Handler that renders single-line records in the shape
//
//	2026-08-31 13:45:02 | INFO     | message key=value
//
// so driver output stays readable next to the raw framed blocks the debug
// client writes to the same stream.
type Handler struct {
	level  slog.Level
	output io.Writer

	mu     sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// Options configures a Handler.
type Options struct {
	// Level is the minimum level to emit. Defaults to slog.LevelInfo.
	Level slog.Level
	// Output is where records are written. Defaults to os.Stderr.
	Output io.Writer
}

// NewHandler builds a Handler from opts. A nil opts uses the defaults.
func NewHandler(opts *Options) *Handler {
	h := &Handler{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	if opts != nil {
		h.level = opts.Level
		if opts.Output != nil {
			h.output = opts.Output
		}
	}
	return h
}

// NewLogger is a convenience wrapper returning a slog.Logger backed by a
// Handler.
func NewLogger(opts *Options) *slog.Logger {
	return slog.New(NewHandler(opts))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Time.Format(timestampLayout))
	fmt.Fprintf(&b, " | %-8s | %s", record.Level.String(), record.Message)

	for _, attr := range h.attrs {
		appendAttr(&b, "", attr)
	}
	prefix := strings.Join(h.groups, ".")
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, prefix, attr)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

// appendAttr renders one attribute, prefixing its key with the group path
// that was open when it was attached.
func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, attr.Value.Resolve().Any())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	prefix := strings.Join(h.groups, ".")
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *Handler) clone() *Handler {
	return &Handler{
		level:  h.level,
		output: h.output,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}
