// Package git provides git operations via shell commands.
//
// All operations call the git CLI through [cmd.OutputContext] rather than a
// Go git library, so the user's git configuration (aliases, includes,
// user.name) applies unchanged.
//
// # Queries
//
// Read-only lookups used to fill builtin pattern variables:
//
//   - [GetShortCommitHash]: abbreviated HEAD commit
//   - [GetAbbrevRef]: symbolic name of HEAD ("HEAD" when detached)
//   - [GetTopLevel]: repository root directory
//   - [GetLastTag]: most recent reachable tag
//   - [GetConfig]: a single git config value
//
// [Repo] bundles these for one directory.
//
// # Branch names
//
//   - [SanitizeRef]: cheap local cleanup of a rendered name
//   - [CheckBranchName]: authoritative validation by git check-ref-format
//   - [CreateBranch]: create and switch to a branch
package git
