package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/new-branch/internal/resolve"
)

// Config holds the user configuration.
type Config struct {
	Pattern string           `toml:"pattern"`
	Prompt  bool             `toml:"prompt"`
	Create  bool             `toml:"create"`
	Types   []resolve.Choice `toml:"types"`
	Theme   ThemeConfig      `toml:"theme"`
}

// ThemeConfig selects the prompt color theme.
type ThemeConfig struct {
	Name string `toml:"name"` // one of ValidThemeNames, empty means "default"
	Mode string `toml:"mode"` // one of ValidThemeModes, empty means "auto"
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Prompt: true,
	}
}

// TypeChoices returns the configured branch types, or the built-in ones when
// none are configured.
func (c *Config) TypeChoices() []resolve.Choice {
	if len(c.Types) > 0 {
		return c.Types
	}
	return resolve.DefaultTypeChoices()
}

// rawConfig distinguishes unset booleans from false.
type rawConfig struct {
	Pattern string           `toml:"pattern"`
	Prompt  *bool            `toml:"prompt"`
	Create  *bool            `toml:"create"`
	Types   []resolve.Choice `toml:"types"`
	Theme   ThemeConfig      `toml:"theme"`
}

// Path returns the path to the user config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "new-branch", "config.toml"), nil
}

// Load reads config from ~/.config/new-branch/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, with the same rules as Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	cfg.Pattern = raw.Pattern
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.Create != nil {
		cfg.Create = *raw.Create
	}
	cfg.Types = raw.Types
	cfg.Theme = raw.Theme

	if err := validateTypes(cfg.Types); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := validateEnum(cfg.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := validateEnum(cfg.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

const defaultConfig = `# new-branch configuration

# Branch name pattern used when no --pattern flag, project config or
# "git config new-branch.pattern" provides one.
#
# Variables are written in braces and can be piped through transforms:
#   {type}/{id}-{title:slugify;max:40}
#
# Builtin variables:
#   {year} {month} {day} {date} {dateCompact}
#   {shortSha} {currentBranch} {userName} {repoName} {lastTag}
#
# Run "new-branch transforms" for the list of transforms.
pattern = "{type}/{title:slugify}"

# Ask for missing values interactively (default: true).
# Prompts are skipped anyway when stdin is not a terminal.
# prompt = true

# Create and switch to the branch instead of printing its name (default: false)
# create = false

# Choices offered for {type}. Replaces the built-in list when set.
#
# [[types]]
# name = "Feature"
# value = "feat"
#
# [[types]]
# name = "Fix"
# value = "fix"

# Prompt colors
# [theme]
# name = "default"  # none, default, dracula, nord, gruvbox or catppuccin
# mode = "auto"     # auto, light or dark
`

// Init creates a default config file at ~/.config/new-branch/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitFile(path, force)
}

// InitFile writes the default config template to path.
func InitFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// DefaultConfig returns the template written by Init.
func DefaultConfig() string {
	return defaultConfig
}
