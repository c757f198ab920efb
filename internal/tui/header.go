package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar with promotion name, server status,
// and timing info.
//
// Layout:
//
//	left:   promotion name (or "Connecting to <URL>..." on first connect)
//	center: colored "● STATUS" indicator (or "● DISCONNECTED  <error>" when offline)
//	right:  "Last: HH:MM:SS  Poll: Ns" (or "Press r to retry" when offline)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var left, center, right string

	if app.current == nil {
		// No successful snapshot yet — initial connecting state.
		left = "Connecting to " + app.serverURL + "..."

		if app.connState == stateDisconnected && app.lastError != nil {
			center = StyleError.Render("● DISCONNECTED  " + truncateErr(app.lastError.Error()))
			right = StyleError.Render("Press r to retry")
		}
	} else {
		// Have at least one snapshot — show promotion info.
		promotion := app.current.Status.Promotion
		if promotion == "" {
			promotion = app.serverURL
		}
		left = promotion

		if app.connState == stateDisconnected {
			// Lost the server after a successful fetch.
			errDisplay := "● DISCONNECTED"
			if app.lastError != nil {
				errDisplay += "  " + truncateErr(app.lastError.Error())
			}
			center = StyleError.Render(errDisplay)
			right = StyleError.Render("Press r to retry")
		} else {
			// Normal connected state.
			status := strings.ToUpper(app.current.Status.Status)
			if status == "" {
				status = "UNKNOWN"
			}
			center = StatusStyle(app.current.Status.Status).Render("● " + status)

			lastStr := "Connecting..."
			if !app.lastUpdated.IsZero() {
				lastStr = app.lastUpdated.Format("15:04:05")
			}
			right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, formatInterval(app.pollInterval)))
		}
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// truncateErr caps an error message for the header at 40 characters.
func truncateErr(msg string) string {
	if len(msg) > 40 {
		return msg[:40] + "..."
	}
	return msg
}

// formatInterval formats a poll interval as a compact string, e.g. "30s" or "2m".
func formatInterval(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
