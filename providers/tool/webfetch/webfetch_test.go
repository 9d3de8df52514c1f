package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch_ConvertsHTMLToMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><h1>Ethanol</h1><p>CCO is <b>cheap</b>.</p></body></html>"))
	}))
	defer server.Close()

	out, err := Fetch(context.Background(), Input{URL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Markdown, "# Ethanol") {
		t.Errorf("expected heading in markdown, got %q", out.Markdown)
	}
	if !strings.Contains(out.Markdown, "**cheap**") {
		t.Errorf("expected bold text in markdown, got %q", out.Markdown)
	}
	if out.URL != server.URL {
		t.Errorf("expected final URL %q, got %q", server.URL, out.URL)
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	if _, err := Fetch(context.Background(), Input{}); err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), Input{URL: server.URL}); err == nil {
		t.Error("expected error for 404 status")
	}
}

func TestFetch_FollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>final</p>"))
	}))
	defer target.Close()

	redirector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer redirector.Close()

	out, err := Fetch(context.Background(), Input{URL: redirector.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.URL != target.URL {
		t.Errorf("expected final URL %q after redirect, got %q", target.URL, out.URL)
	}
}

func TestNewWebFetchTool_SchemaRequiresURL(t *testing.T) {
	info := NewWebFetchTool().ToolInfo()

	if info.Name != "web_fetch" {
		t.Errorf("unexpected tool name: %q", info.Name)
	}
	found := false
	for _, name := range info.Parameters.Required {
		if name == "url" {
			found = true
		}
	}
	if !found {
		t.Error("expected url to be a required parameter")
	}
}
