package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"VALUE", "NAME"}, nil); got != "" {
		t.Errorf("RenderTable() = %q, want empty", got)
	}
}

func TestRenderTable_Columns(t *testing.T) {
	t.Parallel()

	out := RenderTable([]string{"VALUE", "NAME"}, [][]string{
		{"feat", "Feature"},
		{"refactor", "Refactor"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	// Second column starts at the same offset on every line.
	var col int
	for i, line := range lines {
		plain := ansi.Strip(line)
		var idx int
		switch i {
		case 0:
			idx = strings.Index(plain, "NAME")
		case 1:
			idx = strings.Index(plain, "Feature")
		case 2:
			idx = strings.Index(plain, "Refactor")
		}
		if idx < 0 {
			t.Fatalf("line %d = %q, missing second column", i, plain)
		}
		if i == 0 {
			col = idx
		} else if idx != col {
			t.Errorf("line %d second column at %d, want %d", i, idx, col)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}
