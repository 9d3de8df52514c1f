package agents

// Default prompts for the multi-server molecule-generation experiment. The
// driver falls back to these when no override is supplied on the command
// line.
const (
	DefaultSystemPrompt = "You are a world-class chemist. Your task is to generate unique molecules " +
		"based on the lead molecule provided by the user. The generated molecules " +
		"should be chemically valid and diverse, exploring different chemical spaces " +
		"while maintaining some structural similarity to the lead molecule. " +
		"Provide the final answer in a clear and concise manner."

	DefaultUserPrompt = "Generate a unique molecule based on the lead molecule provided. " +
		"The lead molecule is CCO. Use SMILES format for the molecules. " +
		"Ensure the generated molecule is chemically valid and unique, " +
		"using the tools provided. Check the price of the generated molecule " +
		"using the molecule pricing tool, and get a cheap molecule. " +
		"Once you find a molecule that is unique (not known) and reasonably cheap " +
		"(price <= $20), provide your final answer with the SMILES string and price. " +
		"Do not continue searching indefinitely."
)

// Task describes one agent run: the prompt pair plus the tool servers the
// agent may reach, either over the network (URLs) or as local script paths.
type Task struct {
	SystemPrompt string
	UserPrompt   string
	ServerURLs   []string
	ServerPaths  []string
}

// NewTask builds a Task, substituting the default chemistry prompts for any
// empty prompt.
func NewTask(systemPrompt, userPrompt string, serverURLs, serverPaths []string) Task {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	if userPrompt == "" {
		userPrompt = DefaultUserPrompt
	}
	return Task{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		ServerURLs:   serverURLs,
		ServerPaths:  serverPaths,
	}
}
