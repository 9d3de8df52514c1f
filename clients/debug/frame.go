package debug

import "strings"

// Frame geometry. The border rows hold frameInnerWidth fill characters;
// body text wraps at contentWrapWidth and indexed item rows at
// indexedWrapWidth so every row keeps its closing edge aligned.
const (
	frameInnerWidth  = 98
	contentWrapWidth = 96
	indexedWrapWidth = 91
)

var (
	frameTop         = "╔" + strings.Repeat("=", frameInnerWidth) + "╗"
	frameHeaderRule  = "╠" + strings.Repeat("=", frameInnerWidth) + "╣"
	frameSectionRule = "╟" + strings.Repeat("-", frameInnerWidth) + "╢"
	frameBottom      = "╚" + strings.Repeat("=", frameInnerWidth) + "╝"
)

// wrapLine chops a single line (no embedded newlines) into rows of at most
// width runes. An empty line still yields one empty row so it remains
// visible in the framed output.
func wrapLine(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	rows := make([]string, 0, (len(runes)+width-1)/width)
	for len(runes) > width {
		rows = append(rows, string(runes[:width]))
		runes = runes[width:]
	}
	return append(rows, string(runes))
}

// wrapBlock splits text on explicit newlines and wraps each resulting line
// with wrapLine.
func wrapBlock(text string, width int) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrapLine(line, width)...)
	}
	return rows
}
