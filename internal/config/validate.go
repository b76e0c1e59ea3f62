package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/new-branch/internal/resolve"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// validateTypes checks that every [[types]] entry has a name and a value,
// and that values are unique.
func validateTypes(types []resolve.Choice) error {
	seen := make(map[string]int, len(types))
	for i, c := range types {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("invalid types[%d]: name is required", i)
		}
		if strings.TrimSpace(c.Value) == "" {
			return fmt.Errorf("invalid types[%d] %q: value is required", i, c.Name)
		}
		if j, dup := seen[c.Value]; dup {
			return fmt.Errorf("invalid types[%d] %q: value %q already used by types[%d]", i, c.Name, c.Value, j)
		}
		seen[c.Value] = i
	}
	return nil
}
