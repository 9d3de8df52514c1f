package agents

import (
	"strings"
	"testing"
)

func TestNewTask_AppliesDefaultPrompts(t *testing.T) {
	task := NewTask("", "", nil, []string{"stdio_server_1.py", "stdio_server_2.py"})

	if task.SystemPrompt != DefaultSystemPrompt {
		t.Errorf("unexpected system prompt: %q", task.SystemPrompt)
	}
	if task.UserPrompt != DefaultUserPrompt {
		t.Errorf("unexpected user prompt: %q", task.UserPrompt)
	}
	if len(task.ServerPaths) != 2 {
		t.Errorf("unexpected server paths: %v", task.ServerPaths)
	}
}

func TestNewTask_KeepsOverrides(t *testing.T) {
	task := NewTask("custom system", "custom user", []string{"http://localhost:8000"}, nil)

	if task.SystemPrompt != "custom system" || task.UserPrompt != "custom user" {
		t.Errorf("overrides must be kept verbatim: %+v", task)
	}
	if len(task.ServerURLs) != 1 {
		t.Errorf("unexpected server URLs: %v", task.ServerURLs)
	}
}

func TestDefaultPrompts_Content(t *testing.T) {
	if !strings.Contains(DefaultSystemPrompt, "world-class chemist") {
		t.Error("system prompt must carry the chemistry persona")
	}
	for _, want := range []string{"CCO", "SMILES", "price <= $20"} {
		if !strings.Contains(DefaultUserPrompt, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}
