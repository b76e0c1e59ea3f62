package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ArgumentError is returned by a transform whose arguments are missing or
// malformed.
type ArgumentError struct {
	Transform string
	Arg       string
	Reason    string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s expects %s, got %q", e.Transform, e.Reason, e.Arg)
}

var lower = Def{
	Name: "lower",
	Fn: func(value string, _ []string) (string, error) {
		return cases.Lower(language.Und).String(value), nil
	},
	Doc: Doc{
		Summary: "Lowercases the value.",
		Usage:   []string{"{name:lower}"},
	},
}

var upper = Def{
	Name: "upper",
	Fn: func(value string, _ []string) (string, error) {
		return cases.Upper(language.Und).String(value), nil
	},
	Doc: Doc{
		Summary: "Uppercases the value.",
		Usage:   []string{"{name:upper}"},
	},
}

var maxLen = Def{
	Name: "max",
	Fn: func(value string, args []string) (string, error) {
		n, err := countArg("max", args)
		if err != nil {
			return "", err
		}
		runes := []rune(value)
		if n >= len(runes) {
			return value, nil
		}
		return string(runes[:n]), nil
	},
	Doc: Doc{
		Summary: "Truncates the value to a maximum number of characters.",
		Usage:   []string{"{name:max:25}"},
	},
}

var words = Def{
	Name: "words",
	Fn: func(value string, args []string) (string, error) {
		n, err := countArg("words", args)
		if err != nil {
			return "", err
		}
		w := SplitWords(value)
		if n < len(w) {
			w = w[:n]
		}
		return strings.Join(w, " "), nil
	},
	Doc: Doc{
		Summary: "Limits the value to a maximum number of words.",
		Usage:   []string{"{title:words:3}"},
	},
}

var slugify = Def{
	Name: "slugify",
	Fn: func(value string, _ []string) (string, error) {
		return slug(value), nil
	},
	Doc: Doc{
		Summary: "Slugifies to a git-friendly format.",
		Usage:   []string{"{title:slugify}"},
	},
}

var camel = Def{
	Name: "camel",
	Fn: func(value string, _ []string) (string, error) {
		w := lowerAll(SplitWords(value))
		if len(w) == 0 {
			return "", nil
		}
		var b strings.Builder
		b.WriteString(w[0])
		for _, s := range w[1:] {
			b.WriteString(UpperFirst(s))
		}
		return b.String(), nil
	},
	Doc: Doc{
		Summary: "Converts the value to camelCase.",
		Usage:   []string{"{title:camel}"},
	},
}

var kebab = Def{
	Name: "kebab",
	Fn: func(value string, _ []string) (string, error) {
		return strings.Join(lowerAll(SplitWords(value)), "-"), nil
	},
	Doc: Doc{
		Summary: "Converts the value to kebab-case.",
		Usage:   []string{"{title:kebab}"},
	},
}

var snake = Def{
	Name: "snake",
	Fn: func(value string, _ []string) (string, error) {
		return strings.Join(lowerAll(SplitWords(value)), "_"), nil
	},
	Doc: Doc{
		Summary: "Converts the value to snake_case.",
		Usage:   []string{"{title:snake}"},
	},
}

var title = Def{
	Name: "title",
	Fn: func(value string, _ []string) (string, error) {
		w := lowerAll(SplitWords(value))
		for i, s := range w {
			w[i] = UpperFirst(s)
		}
		return strings.Join(w, " "), nil
	},
	Doc: Doc{
		Summary: "Converts the value to Title Case.",
		Usage:   []string{"{title:title}"},
	},
}

// countArg parses the single non-negative count taken by max and words.
// Fractions are truncated toward zero.
func countArg(name string, args []string) (int, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, &ArgumentError{Transform: name, Arg: arg, Reason: "a non-negative number"}
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(f), nil
}

// slug decomposes s, drops combining diacritical marks and keeps runs of
// [a-z0-9] separated by single hyphens.
func slug(s string) string {
	s = strings.ToLower(norm.NFKD.String(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 0x0300 && r <= 0x036f:
			// combining diacritical mark
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
