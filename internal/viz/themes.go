package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the visualizer.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Border lipgloss.Color
	Focus  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Low    lipgloss.Color
	Mid    lipgloss.Color
	High   lipgloss.Color
	Found  lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#444466"),
		Focus:  lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#555566"),
		Low:    lipgloss.Color("#00ccff"),
		Mid:    lipgloss.Color("#ffff00"),
		High:   lipgloss.Color("#ff8800"),
		Found:  lipgloss.Color("#00ff88"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#005500"),
		Focus:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#004400"),
		Low:    lipgloss.Color("#88ff88"),
		Mid:    lipgloss.Color("#ffff00"),
		High:   lipgloss.Color("#00cc00"),
		Found:  lipgloss.Color("#ffffff"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Focus:  lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#555555"),
		Low:    lipgloss.Color("#cccccc"),
		Mid:    lipgloss.Color("#0088ff"),
		High:   lipgloss.Color("#cccccc"),
		Found:  lipgloss.Color("#00ff00"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
		Focus:  lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#2a4a66"),
		Low:    lipgloss.Color("#00a8cc"),
		Mid:    lipgloss.Color("#ffd700"),
		High:   lipgloss.Color("#0077be"),
		Found:  lipgloss.Color("#00ff88"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#8b6b8c"),
		Focus:  lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#5a3d5c"),
		Low:    lipgloss.Color("#feca57"),
		Mid:    lipgloss.Color("#ff6b6b"),
		High:   lipgloss.Color("#ff9ff3"),
		Found:  lipgloss.Color("#5fd068"),
		Error:  lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
