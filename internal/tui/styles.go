package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorSuccess    = lipgloss.Color("#04B575")
	ColorWarning    = lipgloss.Color("#FFB454")
	ColorDanger     = lipgloss.Color("#FF5F87")
	ColorMuted      = lipgloss.Color("#626262")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorBorder     = lipgloss.Color("#444444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	rankFirstStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
