package pattern

import (
	"errors"
	"fmt"
)

// Grammar errors, wrapped in a *GrammarError.
var (
	ErrMissingClosingBrace = errors.New(`missing closing "}"`)
	ErrNestedBrace         = errors.New(`unexpected "{" inside "{}"`)
	ErrEmptyBlock          = errors.New(`empty "{}"`)
	ErrMissingName         = errors.New("missing variable name")
	ErrInvalidTransform    = errors.New("invalid transform")
)

// GrammarError reports a malformed pattern.
type GrammarError struct {
	// Pos is the byte offset of the "{" opening the offending block.
	Pos    int
	Reason error
	// Segment is the offending transform segment, if any.
	Segment string
}

func (e *GrammarError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("invalid pattern: %v %q (at index %d)", e.Reason, e.Segment, e.Pos)
	}
	return fmt.Sprintf("invalid pattern: %v (at index %d)", e.Reason, e.Pos)
}

func (e *GrammarError) Unwrap() error {
	return e.Reason
}

// UnknownTransformError is returned by Render when a pattern names a
// transform that is not in the registry.
type UnknownTransformError struct {
	Name string
	// Suggestion is the closest registered name, if one looks similar.
	Suggestion string
}

func (e *UnknownTransformError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown transform %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown transform %q", e.Name)
}

// MissingValueError is returned by Render in strict mode when a variable
// has no value.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for variable %q", e.Name)
}
