package agents

import (
	"bytes"
	"flag"
	"log/slog"
	"testing"
)

func TestCreateAgent_WiresDebugClient(t *testing.T) {
	pool := NewPool("qwen3-32b", BackendOpenAI,
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		WithDebugWriter(&bytes.Buffer{}),
	)

	agent, err := pool.CreateAgent(NewTask("", "", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.ModelClient() == nil {
		t.Fatal("agent must expose its debug model client")
	}
	if agent.Task().UserPrompt != DefaultUserPrompt {
		t.Error("agent must carry the task it was created for")
	}
	if agent.ModelClient().CallCount() != 0 {
		t.Error("no calls expected before Run")
	}
}

func TestCreateAgent_UnsupportedBackend(t *testing.T) {
	pool := NewPool("qwen3-32b", "slurm")
	if _, err := pool.CreateAgent(NewTask("", "", nil, nil)); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestAddStdFlags_ParsesArguments(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := AddStdFlags(fs)

	err := fs.Parse([]string{
		"--model", "gpt-4o-mini",
		"--backend", "vllm",
		"--server-urls", "http://a:8000, http://b:8000,",
		"--history", "/tmp/history.log",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Model != "gpt-4o-mini" || f.Backend != "vllm" || f.History != "/tmp/history.log" {
		t.Errorf("unexpected flag values: %+v", f)
	}
	urls := f.ServerURLList()
	if len(urls) != 2 || urls[0] != "http://a:8000" || urls[1] != "http://b:8000" {
		t.Errorf("unexpected server URLs: %v", urls)
	}
}

func TestAddStdFlags_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := AddStdFlags(fs)

	if err := fs.Parse(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Model != "qwen3-32b" || f.Backend != BackendOpenAI {
		t.Errorf("unexpected defaults: %+v", f)
	}
	if urls := f.ServerURLList(); urls != nil {
		t.Errorf("expected no server URLs, got %v", urls)
	}
}
