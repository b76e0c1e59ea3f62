package pattern

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *Parsed
	}{
		{
			name:  "literal only",
			input: "release/next",
			want: &Parsed{
				Nodes: []Node{Literal{Value: "release/next"}},
			},
		},
		{
			name:  "empty pattern",
			input: "",
			want:  &Parsed{},
		},
		{
			name:  "variables and literals",
			input: "{type}/{title}-{id}",
			want: &Parsed{
				Nodes: []Node{
					Variable{Name: "type"},
					Literal{Value: "/"},
					Variable{Name: "title"},
					Literal{Value: "-"},
					Variable{Name: "id"},
				},
				VariablesUsed: []string{"type", "title", "id"},
			},
		},
		{
			name:  "transforms with arguments",
			input: "{type}/{title:slugify;max:25}",
			want: &Parsed{
				Nodes: []Node{
					Variable{Name: "type"},
					Literal{Value: "/"},
					Variable{Name: "title", Transforms: []Call{
						{Name: "slugify"},
						{Name: "max", Args: []string{"25"}},
					}},
				},
				VariablesUsed: []string{"type", "title"},
			},
		},
		{
			name:  "multiple arguments",
			input: "{title:replace:_:-}",
			want: &Parsed{
				Nodes: []Node{
					Variable{Name: "title", Transforms: []Call{
						{Name: "replace", Args: []string{"_", "-"}},
					}},
				},
				VariablesUsed: []string{"title"},
			},
		},
		{
			name:  "whitespace is trimmed",
			input: "{ title : slugify ; max : 5 ; }",
			want: &Parsed{
				Nodes: []Node{
					Variable{Name: "title", Transforms: []Call{
						{Name: "slugify"},
						{Name: "max", Args: []string{"5"}},
					}},
				},
				VariablesUsed: []string{"title"},
			},
		},
		{
			name:  "empty transform section",
			input: "{title:}",
			want: &Parsed{
				Nodes:         []Node{Variable{Name: "title"}},
				VariablesUsed: []string{"title"},
			},
		},
		{
			name:  "unicode literals",
			input: "tâche/{id}",
			want: &Parsed{
				Nodes:         []Node{Literal{Value: "tâche/"}, Variable{Name: "id"}},
				VariablesUsed: []string{"id"},
			},
		},
		{
			name:  "stray closing brace is literal",
			input: "a}b",
			want: &Parsed{
				Nodes: []Node{Literal{Value: "a}b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_VariablesUsedDedup(t *testing.T) {
	t.Parallel()

	got, err := Parse("{b}{a}{b}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, got.VariablesUsed); diff != "" {
		t.Errorf("VariablesUsed mismatch (-want +got):\n%s", diff)
	}
	if len(got.Nodes) != 3 {
		t.Errorf("len(Nodes) = %d, want 3", len(got.Nodes))
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		reason error
		pos    int
	}{
		{"missing closing brace", "feat/{title", ErrMissingClosingBrace, 5},
		{"nested brace", "{a{b}", ErrNestedBrace, 0},
		{"empty block", "x-{}", ErrEmptyBlock, 2},
		{"blank block", "{   }", ErrEmptyBlock, 0},
		{"missing name", "{:slugify}", ErrMissingName, 0},
		{"blank name", "{  :max:3}", ErrMissingName, 0},
		{"invalid transform", "{title:slugify;:5}", ErrInvalidTransform, 0},
		{"second block fails", "{a}-{", ErrMissingClosingBrace, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.reason) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.reason)
			}
			var gErr *GrammarError
			if !errors.As(err, &gErr) {
				t.Fatalf("Parse(%q) error type = %T, want *GrammarError", tt.input, err)
			}
			if gErr.Pos != tt.pos {
				t.Errorf("GrammarError.Pos = %d, want %d", gErr.Pos, tt.pos)
			}
		})
	}
}

func TestGrammarError_Message(t *testing.T) {
	t.Parallel()

	_, err := Parse("{title:slugify; :9}")
	want := `invalid pattern: invalid transform ":9" (at index 0)`
	if err == nil || err.Error() != want {
		t.Errorf("Parse() error = %v, want %q", err, want)
	}
}
