package transform

import (
	"fmt"
	"slices"
	"sort"
)

// Func is the signature every transform implements. It receives the current
// value and the arguments given after the transform name in the pattern.
type Func func(value string, args []string) (string, error)

// Doc describes a transform for help output.
type Doc struct {
	Summary string
	Usage   []string
}

// Def is a named transform.
type Def struct {
	Name string
	Fn   Func
	Doc  Doc
}

// Registry maps transform names to their functions.
type Registry map[string]Func

// DuplicateError is returned by Build when two definitions share a name.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate transform name: %q", e.Name)
}

// Build assembles a registry from defs.
func Build(defs []Def) (Registry, error) {
	reg := make(Registry, len(defs))
	for _, d := range defs {
		if _, exists := reg[d.Name]; exists {
			return nil, &DuplicateError{Name: d.Name}
		}
		reg[d.Name] = d.Fn
	}
	return reg, nil
}

// Lookup returns the transform registered under name.
func (r Registry) Lookup(name string) (Func, bool) {
	fn, ok := r[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the built-in transform definitions in display order.
func All() []Def {
	return slices.Clone(builtin)
}

var builtin = []Def{lower, upper, maxLen, slugify, camel, kebab, snake, title, words}

var defaultRegistry = mustBuild(builtin)

// Default returns the registry of all built-in transforms.
// The returned map is shared; callers must not modify it.
func Default() Registry {
	return defaultRegistry
}

func mustBuild(defs []Def) Registry {
	reg, err := Build(defs)
	if err != nil {
		panic(err)
	}
	return reg
}
