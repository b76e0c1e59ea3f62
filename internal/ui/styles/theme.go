package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/new-branch/internal/config"
)

// Theme is the set of colors the styles are built from.
type Theme struct {
	Primary color.Color // titles
	Accent  color.Color // selected items
	Success color.Color // confirmations
	Error   color.Color // validation messages
	Muted   color.Color // placeholders and help
	Normal  color.Color // standard text
}

// themeFamily holds the variants of one theme; either may be nil.
type themeFamily struct {
	Light, Dark *Theme
}

// palette builds a Theme from hex or ANSI color strings in field order.
func palette(primary, accent, success, err, muted, normal string) Theme {
	return Theme{
		Primary: lipgloss.Color(primary),
		Accent:  lipgloss.Color(accent),
		Success: lipgloss.Color(success),
		Error:   lipgloss.Color(err),
		Muted:   lipgloss.Color(muted),
		Normal:  lipgloss.Color(normal),
	}
}

// Presets. Light variants use darker foregrounds for contrast.
var (
	DefaultTheme         = palette("62", "212", "82", "196", "240", "252")
	DraculaTheme         = palette("#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#f8f8f2")
	NordTheme            = palette("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4")
	NordLightTheme       = palette("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440")
	GruvboxTheme         = palette("#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#ebdbb2")
	GruvboxLightTheme    = palette("#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#3c3836")
	CatppuccinMochaTheme = palette("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4")
	CatppuccinLatteTheme = palette("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69")

	// NoneTheme keeps the terminal's colors; bold still applies.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
	}
)

// themeFamilies is keyed by the [theme] name values config accepts.
var themeFamilies = map[string]themeFamily{
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},
	"default":    {Dark: &DefaultTheme},
	"dracula":    {Dark: &DraculaTheme},
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme},
}

var currentTheme = DefaultTheme

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init activates the theme cfg names. Auto mode asks the terminal for its
// background color.
func Init(cfg config.ThemeConfig) {
	currentTheme = selectTheme(cfg, func() bool {
		return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
	})
	applyTheme(currentTheme)
}

// selectTheme picks the variant of the configured family for the mode.
// isDark is only called in auto mode.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = themeFamilies["default"]
	}

	dark := cfg.Mode == "dark" || (cfg.Mode != "light" && isDark())
	want, other := family.Light, family.Dark
	if dark {
		want, other = other, want
	}
	if want == nil {
		want = other
	}
	return *want
}

func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal

	TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
}
