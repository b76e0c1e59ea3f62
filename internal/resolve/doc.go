// Package resolve fills in the pattern variables that have no value yet.
//
// Every variable a pattern uses is required. [Resolve] walks them in order of
// first appearance; a variable whose value is missing or blank is either
// reported as a [*MissingError] (non-interactive) or asked for through a
// [Prompter]. The "type" variable is asked for as a choice between
// [Choice] values, every other variable as free text.
//
// Prompts are issued one at a time, in pattern order. The context passed to
// Resolve is handed to every prompt, so cancelling it aborts a pending
// prompt.
package resolve
