package theme

import "github.com/charmbracelet/lipgloss"

// Settings defines editable appearance preferences. Timing and geometry are
// compile-time constants and deliberately absent.
type Settings struct {
	BreakColor string
	WorkColor  string
	LunchColor string
	AxisColor  string
	ShowHelp   bool
	LogPath    string
}

// DefaultSettings returns the stock terminal palette: cyan break wave, red
// work wave, yellow lunch wave, gray axes.
func DefaultSettings() Settings {
	return Settings{
		BreakColor: "6",
		WorkColor:  "1",
		LunchColor: "3",
		AxisColor:  "245",
		ShowHelp:   true,
	}
}

// Styles carries the resolved lipgloss styles for the chart view.
type Styles struct {
	Axis     lipgloss.Style
	Label    lipgloss.Style
	Title    lipgloss.Style
	Help     lipgloss.Style
	datasets map[string]lipgloss.Style
}

// Styles resolves the settings into concrete styles.
func (settings Settings) Styles() Styles {
	axis := lipgloss.Color(settings.AxisColor)
	return Styles{
		Axis:  lipgloss.NewStyle().Foreground(axis),
		Label: lipgloss.NewStyle().Foreground(axis).Bold(true),
		Title: lipgloss.NewStyle().Foreground(axis),
		Help:  lipgloss.NewStyle().Foreground(axis),
		datasets: map[string]lipgloss.Style{
			"Break": lipgloss.NewStyle().Foreground(lipgloss.Color(settings.BreakColor)),
			"Work":  lipgloss.NewStyle().Foreground(lipgloss.Color(settings.WorkColor)),
			"Lunch": lipgloss.NewStyle().Foreground(lipgloss.Color(settings.LunchColor)),
		},
	}
}

// Dataset returns the style for a named dataset, falling back to the axis
// style for unknown names.
func (styles Styles) Dataset(name string) lipgloss.Style {
	if style, ok := styles.datasets[name]; ok {
		return style
	}
	return styles.Axis
}
