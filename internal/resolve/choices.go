package resolve

// TypeVariable is the variable resolved with a choice prompt.
const TypeVariable = "type"

// Choice is one entry of the branch type list.
type Choice struct {
	Name  string `toml:"name" yaml:"name"`
	Value string `toml:"value" yaml:"value"`
}

// DefaultTypeChoices returns the built-in branch types.
func DefaultTypeChoices() []Choice {
	return []Choice{
		{Name: "Feature", Value: "feat"},
		{Name: "Fix", Value: "fix"},
		{Name: "Documentation", Value: "docs"},
		{Name: "Chore", Value: "chore"},
		{Name: "Refactor", Value: "refactor"},
		{Name: "Test", Value: "test"},
		{Name: "Performance", Value: "perf"},
		{Name: "Build", Value: "build"},
		{Name: "CI", Value: "ci"},
	}
}
