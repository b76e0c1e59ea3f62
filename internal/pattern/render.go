package pattern

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/new-branch/internal/transform"
)

// RenderOptions controls Render.
type RenderOptions struct {
	// AllowMissing renders variables without a value as "" and skips their
	// transforms. By default a missing value is an error.
	AllowMissing bool
}

// Render builds the final string from p. A variable is missing only when
// its key is absent from values; an explicit "" is a value like any other
// and is passed through the transforms.
func Render(p *Parsed, values map[string]string, reg transform.Registry, opts RenderOptions) (string, error) {
	var b strings.Builder
	for _, n := range p.Nodes {
		switch n := n.(type) {
		case Literal:
			b.WriteString(n.Value)
		case Variable:
			s, err := renderVariable(n, values, reg, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

func renderVariable(v Variable, values map[string]string, reg transform.Registry, opts RenderOptions) (string, error) {
	value, ok := values[v.Name]
	if !ok {
		if opts.AllowMissing {
			return "", nil
		}
		return "", &MissingValueError{Name: v.Name}
	}

	for _, call := range v.Transforms {
		fn, ok := reg.Lookup(call.Name)
		if !ok {
			return "", &UnknownTransformError{Name: call.Name, Suggestion: suggest(call.Name, reg)}
		}
		out, err := fn(value, call.Args)
		if err != nil {
			return "", fmt.Errorf("variable %q: %w", v.Name, err)
		}
		value = out
	}
	return value, nil
}

// suggest returns the registered transform name that best matches name.
func suggest(name string, reg transform.Registry) string {
	matches := fuzzy.Find(name, reg.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
