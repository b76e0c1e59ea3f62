package main

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/raphi011/new-branch/internal/builtins"
	"github.com/raphi011/new-branch/internal/git"
	"github.com/raphi011/new-branch/internal/log"
	"github.com/raphi011/new-branch/internal/pattern"
	"github.com/raphi011/new-branch/internal/resolve"
	"github.com/raphi011/new-branch/internal/transform"
)

// generateInput is everything needed to turn a pattern into a branch name.
type generateInput struct {
	Pattern string
	// Explicit values from flags; they override builtins.
	Explicit map[string]string
	Now      time.Time
	// Git answers git builtins; nil leaves them unresolved.
	Git         builtins.GitSource
	Registry    transform.Registry
	Interactive bool
	Prompter    resolve.Prompter
	TypeChoices []resolve.Choice
}

// generate runs the pipeline: parse, collect values, resolve missing ones,
// render strictly, sanitize and have git validate the result.
func generate(ctx context.Context, in generateInput) (string, error) {
	l := log.FromContext(ctx)

	parsed, err := pattern.Parse(in.Pattern)
	if err != nil {
		return "", err
	}
	l.Debug("parsed pattern", "pattern", in.Pattern, "variables", parsed.VariablesUsed)

	values := builtins.ForPattern(ctx, in.Pattern, in.Now, in.Git)
	maps.Copy(values, in.Explicit)

	values, err = resolve.Resolve(ctx, parsed, values, resolve.Options{
		Interactive: in.Interactive,
		Prompter:    in.Prompter,
		TypeChoices: in.TypeChoices,
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve required values: %w", err)
	}

	reg := in.Registry
	if reg == nil {
		reg = transform.Default()
	}
	rendered, err := pattern.Render(parsed, values, reg, pattern.RenderOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to render branch name: %w", err)
	}

	name := git.SanitizeRef(rendered)
	if name != rendered {
		l.Debug("sanitized branch name", "rendered", rendered, "name", name)
	}

	if err := git.CheckBranchName(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}
