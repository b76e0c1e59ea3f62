package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/new-branch/internal/pattern"
)

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// MissingError is returned when a required variable has no value and
// prompting is disabled.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required value: %q", e.Name)
}

// Prompter asks the operator for values.
type Prompter interface {
	// Select asks for one of choices and returns its Value.
	Select(ctx context.Context, message string, choices []Choice) (string, error)
	// Input asks for free text. Answers rejected by validate are asked for
	// again.
	Input(ctx context.Context, message string, validate func(string) error) (string, error)
}

// Options controls Resolve.
type Options struct {
	// Interactive enables prompting for missing values.
	Interactive bool
	// Prompter is required when Interactive is set.
	Prompter Prompter
	// TypeChoices replaces DefaultTypeChoices for the type prompt.
	TypeChoices []Choice
}

// Resolve makes sure every variable p uses has a non-blank value in values,
// prompting for the missing ones if opts.Interactive is set. values is
// updated in place and returned; a nil map is replaced by a new one.
//
// Present values are kept exactly as given, blankness is only used to
// decide whether a value is missing. On error, values accepted from earlier
// prompts stay in the map.
func Resolve(ctx context.Context, p *pattern.Parsed, values map[string]string, opts Options) (map[string]string, error) {
	if values == nil {
		values = make(map[string]string)
	}
	if opts.Interactive && opts.Prompter == nil {
		return values, errors.New("interactive resolution requires a prompter")
	}

	for _, name := range p.VariablesUsed {
		if strings.TrimSpace(values[name]) != "" {
			continue
		}
		if !opts.Interactive {
			return values, &MissingError{Name: name}
		}
		if err := ctx.Err(); err != nil {
			return values, err
		}

		answer, err := ask(ctx, name, opts)
		if err != nil {
			return values, fmt.Errorf("prompt for %q: %w", name, err)
		}
		values[name] = answer
	}

	return values, nil
}

func ask(ctx context.Context, name string, opts Options) (string, error) {
	if name == TypeVariable {
		choices := opts.TypeChoices
		if len(choices) == 0 {
			choices = DefaultTypeChoices()
		}
		return opts.Prompter.Select(ctx, "Select branch type:", choices)
	}

	return opts.Prompter.Input(ctx, fmt.Sprintf("Enter %s:", name), func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
		return nil
	})
}
