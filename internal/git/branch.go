package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// CreateBranch creates branch name from HEAD and switches to it, using
// git switch -c and falling back to git checkout -b for older git.
func CreateBranch(ctx context.Context, dir, name string) error {
	err := runGit(ctx, dir, "switch", "-c", name)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err := runGit(ctx, dir, "checkout", "-b", name); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to create branch %q: %w", name, err)
	}
	return nil
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	forbiddenChars = regexp.MustCompile(`[~^:?*\[\]\\]`)
	slashRun       = regexp.MustCompile(`/+`)
	dotRun         = regexp.MustCompile(`\.\.+`)
	leadingDashes  = regexp.MustCompile(`^[-/]+`)
	trailingDots   = regexp.MustCompile(`[/.]+$`)
)

// SanitizeRef cleans up the most common problems in a would-be branch name.
// It is not a full implementation of git's ref rules; the result still has
// to pass CheckBranchName.
func SanitizeRef(s string) string {
	name := strings.TrimSpace(s)
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = forbiddenChars.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "@{", "")
	name = slashRun.ReplaceAllString(name, "/")
	name = dotRun.ReplaceAllString(name, ".")
	name = leadingDashes.ReplaceAllString(name, "")
	name = trailingDots.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, ".lock")
	return name
}
