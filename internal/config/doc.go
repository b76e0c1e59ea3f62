// Package config loads new-branch settings.
//
// # User Config
//
// ~/.config/new-branch/config.toml holds personal defaults:
//
//	pattern = "{type}/{title:slugify}"
//	prompt = true   # ask for missing values
//	create = false  # create the branch instead of printing it
//
//	[[types]]       # replaces the built-in {type} choices
//	name = "Feature"
//	value = "feat"
//
// A missing file yields [Default]. [Init] writes a commented template.
//
// # Project Config
//
// A project can pin its pattern in the working directory. The first of
// these that sets one wins:
//
//   - package.json: {"new-branch": {"pattern": "..."}}
//   - .new-branch.toml: pattern = "..."
//   - .new-branch.yaml or .new-branch.yml: pattern: "..."
//
// # Pattern Sources (highest priority first)
//
//   - --pattern flag
//   - project config
//   - git config new-branch.pattern
//   - NEW_BRANCH_PATTERN env var
//   - user config pattern
package config
