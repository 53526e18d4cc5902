package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the interactive player.
var (
	colorCyan = lipgloss.Color("36")  // teal - headings
	colorGray = lipgloss.Color("245") // gray - secondary text
	colorDim  = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStep  = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)
