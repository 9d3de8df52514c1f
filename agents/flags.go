package agents

import (
	"flag"
	"strings"
)

// Flags holds the standard client arguments shared by example drivers.
type Flags struct {
	Model      string
	Backend    string
	ServerURLs string
	History    string
}

// AddStdFlags registers the standard client arguments on fs and returns the
// struct the parsed values land in.
func AddStdFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Model, "model", "qwen3-32b", "model identifier to request")
	fs.StringVar(&f.Backend, "backend", BackendOpenAI, "completion backend (openai or vllm)")
	fs.StringVar(&f.ServerURLs, "server-urls", "", "comma-separated tool server URLs")
	fs.StringVar(&f.History, "history", "", "append this invocation to the given command-history file")
	return f
}

// ServerURLList splits the comma-separated server URLs, dropping empties.
func (f *Flags) ServerURLList() []string {
	var urls []string
	for _, raw := range strings.Split(f.ServerURLs, ",") {
		if url := strings.TrimSpace(raw); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
