package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

// Available themes
var (
	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"), // white bars on black, like the SDL original
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeAmber = Theme{
		Name:    "amber",
		Primary: lipgloss.Color("#ffb000"),
		Accent:  lipgloss.Color("#ffe08a"),
		Text:    lipgloss.Color("#ffcc66"),
		Muted:   lipgloss.Color("#775500"),
		Success: lipgloss.Color("#ffe08a"),
		Warning: lipgloss.Color("#ff6600"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	ThemeNeon = Theme{
		Name:    "neon",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ff8800"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeMono,
		ThemeAmber,
		ThemeOcean,
		ThemeNeon,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
