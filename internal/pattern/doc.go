// Package pattern parses and renders branch name patterns.
//
// A pattern is literal text with variable blocks in braces:
//
//	{type}/{title:slugify;max:25}-{id}
//
// A block holds a variable name, optionally followed by ":" and a
// ";"-separated list of transforms. Each transform may take arguments,
// separated by ":" (max:25). The grammar is flat: blocks do not nest and
// there is no escaping, so a literal "{", "}", ":" or ";" cannot appear
// inside a block.
//
// [Parse] turns a pattern into a [Parsed] tree, [Render] fills it with
// values and applies the transforms from a [transform.Registry].
package pattern
