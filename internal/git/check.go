package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepoPath returns true if the given path is inside a git repository
func IsInsideRepoPath(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// InvalidBranchNameError is returned by CheckBranchName when git rejects a
// name.
type InvalidBranchNameError struct {
	Name string
	Err  error
}

func (e *InvalidBranchNameError) Error() string {
	return fmt.Sprintf("invalid git branch name: %q", e.Name)
}

func (e *InvalidBranchNameError) Unwrap() error { return e.Err }

// CheckBranchName asks git whether name is a valid branch name
// (git check-ref-format --branch). It does not need a repository.
func CheckBranchName(ctx context.Context, name string) error {
	if err := runGit(ctx, "", "check-ref-format", "--branch", name); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &InvalidBranchNameError{Name: name, Err: err}
	}
	return nil
}
