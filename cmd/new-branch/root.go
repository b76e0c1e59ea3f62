package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/new-branch/internal/config"
	"github.com/raphi011/new-branch/internal/git"
	"github.com/raphi011/new-branch/internal/log"
	"github.com/raphi011/new-branch/internal/output"
	"github.com/raphi011/new-branch/internal/resolve"
	"github.com/raphi011/new-branch/internal/ui/prompt"
	"github.com/raphi011/new-branch/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootFlags holds the flags of the branch-generating root command.
type rootFlags struct {
	pattern  string
	id       string
	title    string
	typ      string
	sets     []string
	create   bool
	noPrompt bool
	copy     bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "new-branch",
		Short: "Generate git branch names from a pattern",
		Long: `new-branch renders a git branch name from a pattern such as
"{type}/{id}-{title:slugify;max:40}", asking for any value it is missing.

The pattern comes from --pattern, a project config (package.json
"new-branch".pattern, .new-branch.toml or .new-branch.yaml), git config
new-branch.pattern, $NEW_BRANCH_PATTERN or ~/.config/new-branch/config.toml,
in that order.

Builtin variables: year, month, day, date, dateCompact, shortSha,
currentBranch, userName, repoName, lastTag.`,
		Example: `  new-branch -p "{type}/{title:slugify}" --type feat --title "Add login"
  new-branch --id PROJ-42 --title "Fix the thing" --create
  git switch -c "$(new-branch --no-prompt --type fix --title crash)"
  new-branch --set scope=api -p "{type}({scope})/{title:kebab}"`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Styled text is downsampled to what each stream supports.
			stderr := colorprofile.NewWriter(os.Stderr, os.Environ())
			stdout := colorprofile.NewWriter(os.Stdout, os.Environ())
			ctx := log.WithLogger(cmd.Context(), log.New(stderr, verbose, quiet))
			ctx = output.WithPrinter(ctx, output.New(stdout, quiet))

			// Skip config for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == "help" {
				cmd.SetContext(ctx)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			styles.Init(cfg.Theme)

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			ctx = config.WithConfig(ctx, &cfg)
			ctx = config.WithWorkDir(ctx, wd)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.pattern, "pattern", "p", "", "Branch name pattern")
	cmd.Flags().StringVar(&f.id, "id", "", "Value for {id}")
	cmd.Flags().StringVar(&f.title, "title", "", "Value for {title}")
	cmd.Flags().StringVar(&f.typ, "type", "", "Value for {type}")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Set any variable as key=value (repeatable)")
	cmd.Flags().BoolVarP(&f.create, "create", "c", false, "Create and switch to the branch")
	cmd.Flags().BoolVar(&f.noPrompt, "no-prompt", false, "Fail instead of prompting for missing values")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the branch name to the clipboard")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = cmd.RegisterFlagCompletionFunc("type", completeTypes)

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newTransformsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute builds the root command and runs it with a signal-aware context.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'new-branch -h' for help")
		cancel()
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, f rootFlags) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)
	workDir := config.WorkDirFromContext(ctx)

	if err := git.CheckGit(); err != nil {
		return err
	}

	explicit, err := explicitValues(cmd, f)
	if err != nil {
		return err
	}

	repo := git.Repo{Dir: workDir}
	userPath, _ := config.Path()
	src, err := config.FindPattern(ctx, config.PatternLookup{
		Flag:      f.pattern,
		Dir:       workDir,
		GitConfig: repo.Config,
		User:      *cfg,
		UserPath:  userPath,
	})
	if err != nil {
		return err
	}
	l.Debug("using pattern", "pattern", src.Pattern, "from", src.Origin)

	interactive := !f.noPrompt && cfg.Prompt && isTerminal(os.Stdin) && isTerminal(os.Stderr)

	name, err := generate(ctx, generateInput{
		Pattern:     src.Pattern,
		Explicit:    explicit,
		Now:         time.Now(),
		Git:         repo,
		Interactive: interactive,
		Prompter:    prompt.Terminal{},
		TypeChoices: cfg.TypeChoices(),
	})
	if err != nil {
		return err
	}

	if f.copy {
		if err := clipboard.WriteAll(name); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		} else {
			l.Debug("copied to clipboard", "name", name)
		}
	}

	create := cfg.Create
	if cmd.Flags().Changed("create") {
		create = f.create
	}
	if create {
		if err := git.CreateBranch(ctx, workDir, name); err != nil {
			return err
		}
		l.Printf("Branch created and switched to: %s\n", styles.SuccessStyle.Render(name))
		return nil
	}

	output.FromContext(ctx).Println(name)
	return nil
}

// explicitValues collects the values given on the command line. Flags that
// were not passed stay absent so the variables count as missing.
func explicitValues(cmd *cobra.Command, f rootFlags) (map[string]string, error) {
	values := make(map[string]string)
	for name, v := range map[string]string{"id": f.id, "title": f.title, "type": f.typ} {
		if cmd.Flags().Changed(name) {
			values[name] = v
		}
	}
	for _, kv := range f.sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		values[key] = value
	}
	return values, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func completeTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	choices := resolve.DefaultTypeChoices()
	if cfg, err := config.Load(); err == nil {
		choices = cfg.TypeChoices()
	}
	var out []string
	for _, c := range choices {
		if strings.HasPrefix(c.Value, toComplete) {
			out = append(out, c.Value+"\t"+c.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
