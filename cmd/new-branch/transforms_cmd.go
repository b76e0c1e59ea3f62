package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/raphi011/new-branch/internal/output"
	"github.com/raphi011/new-branch/internal/transform"
)

func newTransformsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "transforms",
		Short:   "List the available transforms",
		Aliases: []string{"tr"},
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `List the transforms that can be applied to pattern variables.

Transforms are chained with ";" and take arguments after ":", for example
{title:slugify;max:40}. They run left to right.`,
		Example: `  new-branch transforms
  new-branch transforms --plain | less`,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := transformsMarkdown(transform.All())
			out := output.FromContext(cmd.Context())

			if plain || !isTerminal(os.Stdout) {
				out.Print(md)
				return nil
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("create markdown renderer: %w", err)
			}
			rendered, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render transforms: %w", err)
			}
			out.Print(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print markdown without terminal styling")

	return cmd
}

// transformsMarkdown documents defs as a markdown list in the given order.
func transformsMarkdown(defs []transform.Def) string {
	var b strings.Builder
	b.WriteString("# Transforms\n\n")
	for _, d := range defs {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", d.Name, d.Doc.Summary)
		for _, u := range d.Doc.Usage {
			fmt.Fprintf(&b, "- `%s`\n", u)
		}
		if len(d.Doc.Usage) > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
