package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"spaces", "My big title", []string{"My", "big", "title"}},
		{"camelCase", "myTask", []string{"my", "Task"}},
		{"acronym then word", "HTTPServer", []string{"HTTP", "Server"}},
		{"mixed acronyms", "XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"digit before upper", "v2Beta", []string{"v2", "Beta"}},
		{"punctuation runs", "hello-world_test", []string{"hello", "world", "test"}},
		{"accented letters stay intact", "Título grande", []string{"Título", "grande"}},
		{"camel and acronym", "myTaskHTTP Server", []string{"my", "Task", "HTTP", "Server"}},
		{"all caps", "HTTP", []string{"HTTP"}},
		{"only separators", "--__!!", nil},
		{"already split lowercase", "already", []string{"already"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitWords(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitWords(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitWords_Idempotent(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"hello", "WORLD", "Título", "x1"} {
		got := SplitWords(w)
		if len(got) != 1 || got[0] != w {
			t.Errorf("SplitWords(%q) = %q, want [%q]", w, got, w)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"hELLO", "HELLO"},
		{"élan", "Élan"},
		{"1abc", "1abc"},
	}

	for _, tt := range tests {
		if got := UpperFirst(tt.input); got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"HELLO", "hELLO"},
		{"Élan", "élan"},
	}

	for _, tt := range tests {
		if got := LowerFirst(tt.input); got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
