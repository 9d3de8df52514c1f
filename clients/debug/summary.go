package debug

import (
	"fmt"
	"io"
	"strings"
)

// Summary emits a framed aggregate report of all intercepted calls: the
// total call count and each record's content/thought presence flags. It is
// idempotent; invoking it again with no intervening calls re-emits the same
// report and mutates nothing.
func (c *Client) Summary() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n" + frameTop + "\n")
	b.WriteString("║ VLLM RESPONSE SUMMARY" + strings.Repeat(" ", 75) + "║\n")
	b.WriteString(frameHeaderRule + "\n")
	fmt.Fprintf(&b, "║ Total API calls: %-82d ║\n", c.callCount)
	b.WriteString(frameSectionRule + "\n")

	for idx, record := range c.history {
		fmt.Fprintf(&b, "║ Call #%03d:%s║\n", record.CallID, strings.Repeat(" ", 87))
		fmt.Fprintf(&b, "║   Has content: %-84t ║\n", record.HasContent)
		fmt.Fprintf(&b, "║   Has thought: %-84t ║\n", record.HasThought)
		if idx < len(c.history)-1 {
			b.WriteString(frameSectionRule + "\n")
		}
	}

	b.WriteString(frameBottom + "\n\n")
	io.WriteString(c.out, b.String())
}
