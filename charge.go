// Package charge is a Go toolkit for running chemistry agent experiments
// against OpenAI-compatible model servers. It provides the generic chat
// types and provider interface (providers/ai), an OpenAI/vLLM-compatible
// backend (providers/ai/openai), a debug-instrumented client that frames
// every request/response exchange in fixed-width log blocks (clients/debug),
// a middleware-composable conversation client (core/client), typed tools
// with derived JSON schemas (providers/tool), and an agent pool that wires
// it all together for multi-server tasks (agents).
package charge

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Version is the toolkit release identifier.
const Version = "0.1.0"

// EnableCommandHistory appends the current invocation to the given history
// file so that experiment runs can be replayed from the shell. The file is
// created when missing and each entry carries a timestamp prefix.
//
// This is the opt-in side effect behind the driver's --history flag; callers
// that do not pass a history path never touch the filesystem.
func EnableCommandHistory(path string, args []string) error {
	if path == "" {
		return fmt.Errorf("history path cannot be empty")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), strings.Join(args, " "))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing history entry: %w", err)
	}

	return nil
}
