package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitWords breaks s into word-like segments.
//
// Boundaries are runs of anything that is not a letter or digit, a lower
// case letter or digit followed by an upper case letter ("myTask" -> "my",
// "Task") and the last letter of an upper case run that starts a new
// capitalized word ("HTTPServer" -> "HTTP", "Server"). Letters are matched
// in the full Unicode sense, so "Título" stays one word. The casing of the
// returned words is left untouched.
func SplitWords(s string) []string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return nil
	}

	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i, r := range runes {
		if !isWordRune(r) {
			flush()
			continue
		}
		if i > 0 && boundaryBefore(runes, i) {
			flush()
		}
		cur.WriteRune(r)
	}
	flush()

	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// boundaryBefore reports whether a word starts at runes[i].
func boundaryBefore(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	if !unicode.IsUpper(r) {
		return false
	}
	// camelCase: myTask, v2Beta
	if unicode.IsLower(prev) || unicode.IsNumber(prev) {
		return true
	}
	// acronym followed by a word: HTTPServer
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// UpperFirst upper-cases the first character of s and leaves the rest as is.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// LowerFirst lower-cases the first character of s and leaves the rest as is.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Lower(language.Und).String(string(r)) + s[size:]
}

// lowerAll lower-cases every word in place.
func lowerAll(words []string) []string {
	c := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = c.String(w)
	}
	return words
}
