// Package builtins computes the values new-branch provides without asking:
// date parts from the clock and repository facts from git.
//
// Date builtins are always present. Git builtins are looked up only when a
// pattern mentions them, and a key whose lookup fails is left out of the
// result so the variable counts as missing.
package builtins
