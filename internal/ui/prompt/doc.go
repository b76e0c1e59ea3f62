// Package prompt provides the interactive prompts of new-branch.
//
// Prompts render on stderr so that stdout only carries the branch name,
// and stop when their context is cancelled.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input with validation
//   - [Select]: Single selection from a list
//
// [Terminal] adapts them to [resolve.Prompter].
package prompt
