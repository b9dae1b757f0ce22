// Package ui provides the visual styling for the tidychat terminal UI.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	LightForeground = lipgloss.Color("#1c2733")
	LightPrimary    = lipgloss.Color("#2563eb")
	LightAccent     = lipgloss.Color("#0d9488")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#d8dde4")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#e6e9ef")
	DarkPrimary    = lipgloss.Color("#7aa2f7")
	DarkAccent     = lipgloss.Color("#2dd4bf")
	DarkMuted      = lipgloss.Color("#565f89")
	DarkBorder     = lipgloss.Color("#2a3040")

	// Semantic colors (same in both modes)
	ErrorRed      = lipgloss.Color("#e53935")
	SuccessGreen  = lipgloss.Color("#8BC34A")
	WarningYellow = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from terminal hints, defaulting to dark.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; ANSI background
	// indexes 0-6 and 8 indicate a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || (bgIdx >= 9 && bgIdx <= 15) {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// ThemeFromName resolves a config theme name.
func ThemeFromName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Prompt    lipgloss.Style
	UserInput lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Spinner lipgloss.Style
}

// NewStyles creates a Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(SuccessGreen),

		Error: lipgloss.NewStyle().
			Foreground(ErrorRed).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
