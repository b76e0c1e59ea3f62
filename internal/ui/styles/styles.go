// Package styles provides shared lipgloss styles for the prompts and the
// config and transform listings.
//
// Colors come from the active [Theme]; call [Init] after loading config and
// before rendering anything.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
)

// Styles built from the active theme. applyTheme rebuilds all but Bold.
var (
	Bold = lipgloss.NewStyle().Bold(true)

	// TitleStyle renders prompt questions and table headers.
	TitleStyle   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
)
