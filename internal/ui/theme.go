package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the picker
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor

	// Status message colors
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	CurrentMark lipgloss.Style
	Detail      lipgloss.Style
	Footer      lipgloss.Style
}

// palette holds the colors a theme is built from
type palette struct {
	primary, secondary, accent, foreground, muted lipgloss.AdaptiveColor
	success, failure, info, warning               lipgloss.AdaptiveColor
	selectedFg, selectedBg                        lipgloss.Color
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:           name,
		Primary:        p.primary,
		Secondary:      p.secondary,
		Accent:         p.accent,
		Foreground:     p.foreground,
		Muted:          p.muted,
		MessageSuccess: p.success,
		MessageError:   p.failure,
		MessageInfo:    p.info,
		MessageLoading: p.warning,
	}

	t.Title = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(lipgloss.Color("235")).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Prompt = lipgloss.NewStyle().Foreground(t.Accent)

	t.Row = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(1).
		PaddingRight(1)

	t.SelectedRow = lipgloss.NewStyle().
		Foreground(p.selectedFg).
		Background(p.selectedBg).
		PaddingLeft(1).
		PaddingRight(1)

	t.CurrentMark = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	t.Detail = lipgloss.NewStyle().Foreground(t.Muted)
	t.Footer = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		failure:    lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		info:       lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		selectedFg: lipgloss.Color("229"),
		selectedBg: lipgloss.Color("57"),
	})
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	return newTheme("dracula", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		failure:    lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		info:       lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},
		selectedFg: lipgloss.Color("#f8f8f2"),
		selectedBg: lipgloss.Color("#44475a"),
	})
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return newTheme("nord", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8fbcbb", Dark: "#8fbcbb"},
		accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"},
		foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		failure:    lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		info:       lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},
		selectedFg: lipgloss.Color("#eceff4"),
		selectedBg: lipgloss.Color("#434c5e"),
	})
}

// GetTheme returns the named theme, falling back to charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "nord":
		return ThemeNord()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "nord"}
}
