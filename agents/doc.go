// Package agents provides the task and pool abstractions the example
// drivers build on: a Task pairs prompts with tool-server locations, a Pool
// turns tasks into runnable Agents bound to a model/backend, and AddStdFlags
// registers the CLI arguments shared by every driver.
package agents
