package builtins

import (
	"context"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/new-branch/internal/log"
)

// Git builtin keys.
const (
	KeyShortSHA      = "shortSha"
	KeyCurrentBranch = "currentBranch"
	KeyUserName      = "userName"
	KeyRepoName      = "repoName"
	KeyLastTag       = "lastTag"
)

// GitKeys lists every git builtin in a stable order.
var GitKeys = []string{KeyShortSHA, KeyCurrentBranch, KeyUserName, KeyRepoName, KeyLastTag}

// GitSource answers the git questions behind the git builtins.
// git.Repo implements it.
type GitSource interface {
	ShortCommitHash(ctx context.Context) (string, error)
	AbbrevRef(ctx context.Context) (string, error)
	TopLevel(ctx context.Context) (string, error)
	LastTag(ctx context.Context) (string, error)
	Config(ctx context.Context, key string) (string, error)
}

// KeysInPattern returns the git keys whose name appears anywhere in the raw
// pattern text, in GitKeys order. A plain substring test is enough to skip
// git entirely for patterns that cannot use it.
func KeysInPattern(pattern string) []string {
	var keys []string
	for _, k := range GitKeys {
		if strings.Contains(pattern, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Git resolves the requested git builtins concurrently. Duplicate keys are
// looked up once, unknown keys are ignored and an empty keys slice means all
// of GitKeys. Keys that cannot be determined are absent from the result.
func Git(ctx context.Context, src GitSource, keys []string) map[string]string {
	if len(keys) == 0 {
		keys = GitKeys
	}

	var (
		mu     sync.Mutex
		values = make(map[string]string, len(keys))
		seen   = make(map[string]bool, len(keys))
		g      errgroup.Group
	)

	for _, key := range keys {
		if seen[key] || !slices.Contains(GitKeys, key) {
			continue
		}
		seen[key] = true

		g.Go(func() error {
			v, ok := lookup(ctx, src, key)
			if !ok {
				log.FromContext(ctx).Debug("git builtin unavailable", "key", key)
				return nil
			}
			mu.Lock()
			values[key] = v
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // lookups never fail, they just leave the key out

	return values
}

func lookup(ctx context.Context, src GitSource, key string) (string, bool) {
	switch key {
	case KeyShortSHA:
		return nonEmpty(src.ShortCommitHash(ctx))
	case KeyCurrentBranch:
		v, ok := nonEmpty(src.AbbrevRef(ctx))
		if v == "HEAD" {
			return "", false
		}
		return v, ok
	case KeyRepoName:
		root, ok := nonEmpty(src.TopLevel(ctx))
		if !ok {
			return "", false
		}
		return repoName(root)
	case KeyLastTag:
		return nonEmpty(src.LastTag(ctx))
	case KeyUserName:
		if v, ok := nonEmpty(src.Config(ctx, "user.name")); ok {
			return v, true
		}
		for _, env := range []string{"USER", "USERNAME"} {
			if v := os.Getenv(env); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func nonEmpty(s string, err error) (string, bool) {
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// repoName returns the last element of root, accepting both / and \ as
// separators.
func repoName(root string) (string, bool) {
	parts := strings.FieldsFunc(root, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return "", false
	}
	return parts[len(parts)-1], true
}
