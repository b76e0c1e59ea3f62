package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/new-branch/internal/config"
	"github.com/raphi011/new-branch/internal/git"
	"github.com/raphi011/new-branch/internal/log"
	"github.com/raphi011/new-branch/internal/output"
	"github.com/raphi011/new-branch/internal/ui/prompt"
	"github.com/raphi011/new-branch/internal/ui/static"
	"github.com/raphi011/new-branch/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage new-branch configuration.

User config:    ~/.config/new-branch/config.toml
Project config: package.json ("new-branch" key), .new-branch.toml or .new-branch.yaml`,
		Example: `  new-branch config init     # Create default user config
  new-branch config show     # Show the effective pattern`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  new-branch config init      # Create user config
  new-branch config init -f   # Overwrite existing config
  new-branch config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if stdout {
				output.FromContext(ctx).Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
				res, err := prompt.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite?", path))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return errors.New("aborted")
				}
			}

			if err := config.InitFile(path, true); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", styles.SuccessStyle.Render(path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective pattern and where it comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			workDir := config.WorkDirFromContext(ctx)
			out := output.FromContext(ctx)

			userPath, _ := config.Path()
			src, err := config.FindPattern(ctx, config.PatternLookup{
				Dir:       workDir,
				GitConfig: git.Repo{Dir: workDir}.Config,
				User:      *cfg,
				UserPath:  userPath,
			})
			if err != nil && !errors.Is(err, config.ErrPatternRequired) {
				return err
			}

			if src.Pattern == "" {
				out.Println("pattern: (none)")
			} else {
				out.Printf("pattern: %s\n", src.Pattern)
				out.Printf("source:  %s\n", src.Origin)
			}
			out.Printf("prompt:  %t\n", cfg.Prompt)
			out.Printf("create:  %t\n", cfg.Create)
			out.Println()

			var rows [][]string
			for _, c := range cfg.TypeChoices() {
				rows = append(rows, []string{c.Value, c.Name})
			}
			out.Print(static.RenderTable([]string{"TYPE", "NAME"}, rows))
			return nil
		},
	}

	return cmd
}
