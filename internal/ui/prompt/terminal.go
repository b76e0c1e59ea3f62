package prompt

import (
	"context"

	"github.com/raphi011/new-branch/internal/resolve"
)

// Terminal asks for values with the interactive prompts.
// It implements resolve.Prompter; an aborted prompt yields
// resolve.ErrCancelled.
type Terminal struct{}

var _ resolve.Prompter = Terminal{}

func (Terminal) Select(ctx context.Context, message string, choices []resolve.Choice) (string, error) {
	options := make([]Option, len(choices))
	for i, c := range choices {
		options[i] = Option{Label: c.Name, Value: c.Value}
	}

	res, err := Select(ctx, message, options)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", resolve.ErrCancelled
	}
	return res.Value, nil
}

func (Terminal) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	res, err := TextInput(ctx, message, "", validate)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", resolve.ErrCancelled
	}
	return res.Value, nil
}
