package debug

import (
	"strings"
	"testing"
)

func TestWrapLine_RowCountMatchesCeilDivision(t *testing.T) {
	tests := []struct {
		length int
		width  int
		rows   int
	}{
		{0, 96, 1},
		{1, 96, 1},
		{96, 96, 1},
		{97, 96, 2},
		{192, 96, 2},
		{193, 96, 3},
		{91, 91, 1},
		{200, 91, 3},
	}

	for _, tt := range tests {
		line := strings.Repeat("x", tt.length)
		rows := wrapLine(line, tt.width)
		if len(rows) != tt.rows {
			t.Errorf("wrapLine(len=%d, width=%d): got %d rows, want %d",
				tt.length, tt.width, len(rows), tt.rows)
		}
	}
}

func TestWrapLine_ConcatenationReconstructsLine(t *testing.T) {
	line := strings.Repeat("abcdefghij", 25) // 250 chars
	rows := wrapLine(line, 96)
	if strings.Join(rows, "") != line {
		t.Error("concatenated rows must reconstruct the original line")
	}
	for i, row := range rows[:len(rows)-1] {
		if len(row) != 96 {
			t.Errorf("row %d has length %d, want 96", i, len(row))
		}
	}
}

func TestWrapLine_EmptyLineYieldsOneRow(t *testing.T) {
	rows := wrapLine("", 96)
	if len(rows) != 1 || rows[0] != "" {
		t.Errorf("expected single empty row, got %q", rows)
	}
}

func TestWrapLine_MultiByteRunes(t *testing.T) {
	line := strings.Repeat("é", 100)
	rows := wrapLine(line, 96)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rowLen := len([]rune(rows[0])); rowLen != 96 {
		t.Errorf("first row has %d runes, want 96", rowLen)
	}
	if strings.Join(rows, "") != line {
		t.Error("rune wrapping must not split or drop characters")
	}
}

func TestWrapBlock_SplitsOnNewlines(t *testing.T) {
	text := "first\n\n" + strings.Repeat("z", 100)
	rows := wrapBlock(text, 96)
	// "first", the preserved empty line, and two rows for the long line.
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4: %q", len(rows), rows)
	}
	if rows[0] != "first" || rows[1] != "" {
		t.Errorf("unexpected leading rows: %q", rows[:2])
	}
}

func TestFrameBorders_ConsistentWidth(t *testing.T) {
	for name, border := range map[string]string{
		"top":     frameTop,
		"header":  frameHeaderRule,
		"section": frameSectionRule,
		"bottom":  frameBottom,
	} {
		if got := len([]rune(border)); got != frameInnerWidth+2 {
			t.Errorf("%s border has %d runes, want %d", name, got, frameInnerWidth+2)
		}
	}
}
