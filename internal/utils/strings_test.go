package utils

import (
	"strings"
	"testing"
)

func TestTruncateString_ShortInputUnchanged(t *testing.T) {
	in := "hello"
	if got := TruncateString(in, 10); got != in {
		t.Errorf("expected %q unchanged, got %q", in, got)
	}
}

func TestTruncateString_LongInputTruncatedWithSuffix(t *testing.T) {
	in := strings.Repeat("a", 600)
	got := TruncateString(in, 100)

	if !strings.HasPrefix(got, strings.Repeat("a", 100)) {
		t.Errorf("expected 100-char prefix preserved, got %q", got[:110])
	}
	if !strings.Contains(got, "total: 600 chars") {
		t.Errorf("expected original length in suffix, got %q", got)
	}
}

func TestTruncateString_ZeroMaxLenUsesDefault(t *testing.T) {
	in := strings.Repeat("b", DefaultMaxStringLength+1)
	got := TruncateString(in, 0)

	if len(got) <= DefaultMaxStringLength {
		// Prefix plus suffix must exceed the default cutoff.
		t.Errorf("expected truncation at default length, got len=%d", len(got))
	}
	if !strings.Contains(got, "truncated") {
		t.Errorf("expected truncation marker, got %q", got)
	}
}

func TestJSONToString_Compact(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1})
	if got != `{"a":1}` {
		t.Errorf("unexpected JSON: %s", got)
	}
}

func TestJSONToString_Indented(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1}, true)
	if !strings.Contains(got, "\n  \"a\": 1") {
		t.Errorf("expected indented output, got %s", got)
	}
}

func TestJSONToString_MarshalFailureReturnsErrorJSON(t *testing.T) {
	got := JSONToString(make(chan int))
	if !strings.Contains(got, "failed to marshal") {
		t.Errorf("expected error JSON, got %s", got)
	}
}
