package git

import (
	"context"
	"fmt"
)

// GetShortCommitHash returns the abbreviated commit hash of HEAD.
func GetShortCommitHash(ctx context.Context, path string) (string, error) {
	hash, err := outputLine(ctx, path, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get commit hash: %w", err)
	}
	return hash, nil
}

// GetAbbrevRef returns the short symbolic name of HEAD.
// Returns "HEAD" for detached HEAD state.
func GetAbbrevRef(ctx context.Context, path string) (string, error) {
	ref, err := outputLine(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return ref, nil
}

// GetTopLevel returns the root directory of the working tree containing path.
func GetTopLevel(ctx context.Context, path string) (string, error) {
	root, err := outputLine(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return root, nil
}

// GetLastTag returns the most recent tag reachable from HEAD.
func GetLastTag(ctx context.Context, path string) (string, error) {
	tag, err := outputLine(ctx, path, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", fmt.Errorf("failed to describe tags: %w", err)
	}
	return tag, nil
}

// GetConfig returns the value of a git config key as seen from path.
// An unset key returns "" and no error.
func GetConfig(ctx context.Context, path, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, err := outputLine(ctx, path, "config", "--get", key)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		// git config --get exits 1 without output for unset keys; any
		// other failure (outside a repo, broken config) reads as unset too.
		return "", nil
	}
	return value, nil
}

// Repo runs queries against the repository containing Dir
// (the working directory if empty).
type Repo struct {
	Dir string
}

func (r Repo) ShortCommitHash(ctx context.Context) (string, error) {
	return GetShortCommitHash(ctx, r.Dir)
}

func (r Repo) AbbrevRef(ctx context.Context) (string, error) {
	return GetAbbrevRef(ctx, r.Dir)
}

func (r Repo) TopLevel(ctx context.Context) (string, error) {
	return GetTopLevel(ctx, r.Dir)
}

func (r Repo) LastTag(ctx context.Context) (string, error) {
	return GetLastTag(ctx, r.Dir)
}

func (r Repo) Config(ctx context.Context, key string) (string, error) {
	return GetConfig(ctx, r.Dir, key)
}
