// Package theme defines the named color palettes used for terminal
// output. Palettes are a static registry; lookup falls back to the
// default theme so callers never get a zero style set.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when none is configured or the
// configured name is unknown.
const DefaultName = "dark"

// Theme is one named palette.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var registry = map[string]Theme{
	"dark": {
		Name:    "dark",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"light": {
		Name:    "light",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	},
	"solarized": {
		Name:    "solarized",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93a1a1")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#268bd2")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#586e75")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#859900")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#b58900")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc322f")),
	},
}

// Get returns the theme with the given name, or the default theme when
// the name is unknown.
func Get(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return registry[DefaultName]
}

// Exists reports whether name is a registered theme.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
