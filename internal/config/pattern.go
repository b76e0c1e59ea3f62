package config

import (
	"context"
	"errors"
	"os"
	"strings"
)

// PatternEnv overrides the user config file pattern.
const PatternEnv = "NEW_BRANCH_PATTERN"

// GitConfigKey is the git config key holding a pattern.
const GitConfigKey = "new-branch.pattern"

// ErrPatternRequired is returned when no source provides a pattern.
var ErrPatternRequired = errors.New("pattern is required: use --pattern or set one in a config file")

// PatternSource is a pattern together with where it came from.
type PatternSource struct {
	Pattern string
	Origin  string
}

// PatternLookup holds the inputs for FindPattern.
type PatternLookup struct {
	// Flag is the --pattern value; empty when not given.
	Flag string
	// Dir is searched for project config files.
	Dir string
	// GitConfig reads a git config value; nil skips git.
	GitConfig func(ctx context.Context, key string) (string, error)
	// User is the loaded user config and UserPath its file.
	User     Config
	UserPath string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// FindPattern returns the first non-blank pattern, in order: the flag, the
// project config, git config new-branch.pattern, $NEW_BRANCH_PATTERN and the
// user config. Later sources are not consulted once one matches.
func FindPattern(ctx context.Context, l PatternLookup) (PatternSource, error) {
	if !blank(l.Flag) {
		return PatternSource{Pattern: l.Flag, Origin: "--pattern flag"}, nil
	}

	pc, err := LoadProject(l.Dir)
	if err != nil {
		return PatternSource{}, err
	}
	if pc != nil {
		return PatternSource{Pattern: pc.Pattern, Origin: pc.Path}, nil
	}

	if l.GitConfig != nil {
		v, err := l.GitConfig(ctx, GitConfigKey)
		if err != nil {
			return PatternSource{}, err
		}
		if !blank(v) {
			return PatternSource{Pattern: v, Origin: "git config " + GitConfigKey}, nil
		}
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(PatternEnv); !blank(v) {
		return PatternSource{Pattern: v, Origin: "$" + PatternEnv}, nil
	}

	if !blank(l.User.Pattern) {
		origin := l.UserPath
		if origin == "" {
			origin = "user config"
		}
		return PatternSource{Pattern: l.User.Pattern, Origin: origin}, nil
	}

	return PatternSource{}, ErrPatternRequired
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
