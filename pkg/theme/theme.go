// Package theme supplies the colours and typography used to paint view trees.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/tally/pkg/domain"
)

// Theme is a named colour scheme.
type Theme struct {
	Name string

	Primary   lipgloss.TerminalColor
	OnPrimary lipgloss.TerminalColor
	OnSurface lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Outline   lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
}

// Dark is tuned for dark terminal backgrounds.
func Dark() Theme {
	return Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#a78bfa"),
		OnPrimary: lipgloss.Color("#1e1b4b"),
		OnSurface: lipgloss.Color("#e5e7eb"),
		Muted:     lipgloss.Color("#6b7280"),
		Outline:   lipgloss.Color("#4b5563"),
		Accent:    lipgloss.Color("#34d399"),
	}
}

// Light is tuned for light terminal backgrounds.
func Light() Theme {
	return Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#6d28d9"),
		OnPrimary: lipgloss.Color("#ffffff"),
		OnSurface: lipgloss.Color("#111827"),
		Muted:     lipgloss.Color("#9ca3af"),
		Outline:   lipgloss.Color("#d1d5db"),
		Accent:    lipgloss.Color("#059669"),
	}
}

// Auto picks light or dark colours from the terminal background at render time.
func Auto() Theme {
	d, l := Dark(), Light()
	return Theme{
		Name:      "auto",
		Primary:   adaptive(l.Primary, d.Primary),
		OnPrimary: adaptive(l.OnPrimary, d.OnPrimary),
		OnSurface: adaptive(l.OnSurface, d.OnSurface),
		Muted:     adaptive(l.Muted, d.Muted),
		Outline:   adaptive(l.Outline, d.Outline),
		Accent:    adaptive(l.Accent, d.Accent),
	}
}

func adaptive(light, dark lipgloss.TerminalColor) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(light.(lipgloss.Color)),
		Dark:  string(dark.(lipgloss.Color)),
	}
}

var registry = map[string]func() Theme{
	"auto":  Auto,
	"dark":  Dark,
	"light": Light,
}

// Names lists the registered theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName resolves a theme. An empty name selects Auto.
func ByName(name string) (Theme, error) {
	if name == "" {
		return Auto(), nil
	}
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("%w: theme %q (available: %s)", domain.ErrInvalidConfig, name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}
