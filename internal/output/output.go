// Package output carries the stdout printer through the context.
//
// Stdout holds results meant for scripts: the generated branch name, the
// config template, transform docs. Diagnostics go through the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes results to stdout. A quiet printer drops everything.
type Printer struct {
	w     io.Writer
	quiet bool
}

// New creates a Printer writing to w.
func New(w io.Writer, quiet bool) *Printer {
	return &Printer{w: w, quiet: quiet}
}

// WithPrinter attaches p to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context, falling back to a
// non-quiet Printer on os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

func (p *Printer) Print(a ...any) {
	if p.quiet {
		return
	}
	fmt.Fprint(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer, ignoring quiet.
func (p *Printer) Writer() io.Writer {
	return p.w
}
