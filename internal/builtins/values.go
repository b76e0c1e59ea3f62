package builtins

import (
	"context"
	"maps"
	"time"
)

// ForPattern returns the builtins available to pattern: all date builtins
// and the git builtins the pattern text mentions. git is not consulted when
// the pattern mentions none, and src may then be nil.
func ForPattern(ctx context.Context, pattern string, now time.Time, src GitSource) map[string]string {
	values := Date(now)
	if keys := KeysInPattern(pattern); len(keys) > 0 && src != nil {
		maps.Copy(values, Git(ctx, src, keys))
	}
	return values
}
