// Package cmd runs external commands with stderr folded into errors.
//
// A failing command returns its trimmed stderr as the error text, so a git
// failure reads as git's own message:
//
//	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--short", "HEAD")
//	if err != nil {
//	    // err.Error() is what git printed to stderr
//	}
//
// Cancelling ctx kills the process and returns ctx.Err() unwrapped.
//
// new-branch shells out to the git CLI rather than a Go git library so that
// the user's git configuration applies unchanged.
package cmd
