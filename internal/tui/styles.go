package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — ringside palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// Status styles — bold foreground, used for the server status indicator.
var (
	StyleStatusOK       = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusDegraded = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleStatusDown     = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleStatusUnknown  = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleOverviewCard — bordered card for the metric overview bar.
var StyleOverviewCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0).
	Align(lipgloss.Center)

// StyleSectionTitle — panel headings (ALERTS, BOOKING OFFICE).
var StyleSectionTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorCyan)

// Table styles.
var (
	StyleTableHeader = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(colorGray)

	StyleTableRow = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
)

// Named color styles for table cell coloring.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StylePurple = lipgloss.NewStyle().Foreground(colorPurple)
)

// StatusStyle returns the style for a GM server status string.
// Accepts "ok", "degraded", "down"; anything else renders dim gray.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "ok":
		return StyleStatusOK
	case "degraded":
		return StyleStatusDegraded
	case "down":
		return StyleStatusDown
	default:
		return StyleStatusUnknown
	}
}

// SeverityStyle returns the style for an alert severity string.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "critical":
		return StyleRed
	case "warning":
		return StyleYellow
	case "info":
		return StyleBlue
	default:
		return StyleDim
	}
}
