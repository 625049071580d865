package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the bar and chrome colors for the TUI
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Compare   lipgloss.Color
	Swap      lipgloss.Color
	Highlight lipgloss.Color
	Sorted    lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Bar:       lipgloss.Color("#3498db"),
		Compare:   lipgloss.Color("#e74c3c"),
		Swap:      lipgloss.Color("#f39c12"),
		Highlight: lipgloss.Color("#e74c3c"),
		Sorted:    lipgloss.Color("#2ecc71"),
		Title:     lipgloss.Color("#00cccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Bar:       lipgloss.Color("#00aa00"),
		Compare:   lipgloss.Color("#ffff00"),
		Swap:      lipgloss.Color("#88ff88"),
		Highlight: lipgloss.Color("#ffff00"),
		Sorted:    lipgloss.Color("#00ff00"),
		Title:     lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Bar:       lipgloss.Color("#0077be"),
		Compare:   lipgloss.Color("#ffd700"),
		Swap:      lipgloss.Color("#ff4444"),
		Highlight: lipgloss.Color("#ffd700"),
		Sorted:    lipgloss.Color("#00ff88"),
		Title:     lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Bar:       lipgloss.Color("#ff6b6b"),
		Compare:   lipgloss.Color("#feca57"),
		Swap:      lipgloss.Color("#ff9ff3"),
		Highlight: lipgloss.Color("#feca57"),
		Sorted:    lipgloss.Color("#5fd068"),
		Title:     lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
