package theme

import "github.com/charmbracelet/lipgloss"

// Main styles
var (
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	NormalStyle   = lipgloss.NewStyle().Foreground(ColorNormal)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TitleStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Chart styles
var (
	BarPeakStyle = lipgloss.NewStyle().Foreground(ColorBarPeak)
	BarStyle     = lipgloss.NewStyle().Foreground(ColorBar)
	CountStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	LetterStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)

// GroupStyle returns the legend style for the i-th extension group
func GroupStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GroupColors[i%len(GroupColors)])
}
