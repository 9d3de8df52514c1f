package agents

import (
	"context"

	"github.com/amarathe84/ChARGe/clients/debug"
	"github.com/amarathe84/ChARGe/core/client"
)

// Agent executes one task against its configured conversation client.
type Agent struct {
	task        Task
	client      *client.Client
	modelClient *debug.Client
}

// Run sends the task's user prompt and drives the conversation, including
// any tool calls the model requests, until completion. It returns the final
// answer text.
func (a *Agent) Run(ctx context.Context) (string, error) {
	response, err := a.client.SendMessage(ctx, a.task.UserPrompt)
	if err != nil {
		return "", err
	}
	return response.Content, nil
}

// Task returns the task this agent was created for.
func (a *Agent) Task() Task {
	return a.task
}

// ModelClient exposes the debug-instrumented provider so callers can emit a
// response summary after a run.
func (a *Agent) ModelClient() *debug.Client {
	return a.modelClient
}
