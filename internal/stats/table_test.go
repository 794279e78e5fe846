package stats

import (
	"bytes"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"N-gram", "Count", "Share"}
	rows := [][]string{
		{"t_␣", "12", "3.50%"},
		{"th", "3", "0.25%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "N-gram Count Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "t_␣       12 3.50%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "th         3 0.25%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestWriteTableWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil, [][]string{{"Score", "1.50"}, {"Heatmap", "12"}}, map[int]bool{1: true}); err != nil {
		t.Fatalf("writeTable failed: %v", err)
	}
	want := "Score   1.50\nHeatmap   12\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
