package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ringside/internal/format"
)

// renderOverview renders the 5-card metric bar.
// Wide terminals (>= 80 cols): all 5 cards in a single horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2 (3 rows: 2+2+1).
// Returns empty string if no snapshot is available yet.
func renderOverview(app *App) string {
	if app.current == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 10) / 5
		if cardWidth < 10 {
			cardWidth = 10
		}
	}

	status := app.current.Status
	m := status.Metrics

	// Card 1: Server status — colored background.
	statusText := strings.ToUpper(status.Status)
	if statusText == "" {
		statusText = "UNKNOWN"
	}
	var statusBg lipgloss.Color
	switch status.Status {
	case "ok":
		statusBg = colorGreen
	case "degraded":
		statusBg = colorYellow
	case "down":
		statusBg = colorRed
	default:
		statusBg = colorGray
	}
	card1 := StyleOverviewCard.
		Background(statusBg).
		Foreground(colorDark).
		Bold(true).
		Width(cardWidth).
		Render(statusText + "\nServer")

	// Card 2: Simulation rate — cyan foreground.
	card2 := StyleOverviewCard.
		Foreground(colorCyan).
		Width(cardWidth).
		Render(format.FormatRate(m.SimTicksPerSecond) + "\nSim Ticks")

	// Card 3: Event queue depth — purple foreground.
	card3 := StyleOverviewCard.
		Foreground(colorPurple).
		Width(cardWidth).
		Render(format.FormatNumber(m.EventQueueDepth) + "\nEvent Queue")

	// Card 4: Active booker sessions — blue foreground.
	card4 := StyleOverviewCard.
		Foreground(colorBlue).
		Width(cardWidth).
		Render(format.FormatNumber(m.ActiveSessions) + "\nSessions")

	// Card 5: Save-store latency — colored by how bad it is.
	latFg := colorGreen
	switch {
	case m.SaveLatencyMS >= 500:
		latFg = colorRed
	case m.SaveLatencyMS >= 100:
		latFg = colorYellow
	}
	card5 := StyleOverviewCard.
		Foreground(latFg).
		Width(cardWidth).
		Render(format.FormatLatency(m.SaveLatencyMS) + "\nSave Latency")

	if narrowMode {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, card1, card2)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, card3, card4)
		return lipgloss.JoinVertical(lipgloss.Left, row1, row2, card5)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card1, card2, card3, card4, card5)
}
