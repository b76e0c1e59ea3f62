package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("attached printer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf, false)
		if got := FromContext(WithPrinter(context.Background(), p)); got != p {
			t.Errorf("FromContext() = %p, want %p", got, p)
		}
	})

	t.Run("falls back to stdout", func(t *testing.T) {
		t.Parallel()
		if FromContext(context.Background()).Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
		want  string
	}{
		{name: "prints", want: "feat/x\nfix/1-y\nz"},
		{name: "quiet drops output", quiet: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			p := New(&buf, tt.quiet)
			p.Println("feat/x")
			p.Printf("%s/%d-%s\n", "fix", 1, "y")
			p.Print("z")
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
