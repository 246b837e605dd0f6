package tui

import "github.com/charmbracelet/lipgloss"

// NEXYRA brand palette.
var (
	ColorPrimary    = lipgloss.Color("#00B4B6") // electric teal
	ColorSilver     = lipgloss.Color("#A7A9AC") // carbon silver
	ColorForeground = lipgloss.Color("#F7F7F7")
	ColorMuted      = lipgloss.Color("#6C6F73")
	ColorWarn       = lipgloss.Color("#E5C07B")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSilver).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSilver).
			Padding(0, 1)

	FocusedPanelStyle = PanelStyle.
				BorderForeground(ColorPrimary)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	BaselineStyle = lipgloss.NewStyle().
			Foreground(ColorWarn).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
