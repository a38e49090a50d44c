package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Chart colors
const (
	ColorBar     Color = "2"   // Green
	ColorBarPeak Color = "214" // Orange - most frequent letter
)

// GroupColors cycles across extension groups in the chart legend
var GroupColors = []Color{"33", "226", "141", "46", "205"}
