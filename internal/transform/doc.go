// Package transform holds the named text transforms that can be applied to
// pattern variables, e.g. the slugify and max in {title:slugify;max:25}.
//
// A transform is a pure function of the current value and its string
// arguments. Definitions are collected into a [Registry] with [Build], which
// rejects duplicate names. [Default] returns the registry of all built-in
// transforms:
//
//   - lower, upper: Unicode-aware case mapping
//   - max:N: keep the first N characters
//   - words:N: keep the first N words, joined by single spaces
//   - slugify: ASCII slug without diacritics, words joined by "-"
//   - camel, kebab, snake, title: case styles built on [SplitWords]
package transform
