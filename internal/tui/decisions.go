package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ringside/internal/format"
)

// maxVisibleDecisions caps the booking-office panel; the rest collapses into
// a "+N more" line so the alerts table keeps its space.
const maxVisibleDecisions = 6

// renderDecisions renders the pending-decision panel in server order
// (the GM server sends the most urgent items first).
func renderDecisions(app *App) string {
	if app.current == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleSectionTitle.Render(fmt.Sprintf("BOOKING OFFICE (%d waiting)", len(app.current.Decisions))))
	b.WriteString("\n")

	if len(app.current.Decisions) == 0 {
		b.WriteString(StyleDim.Render("nothing waiting on you"))
		return b.String()
	}

	now := time.Now()
	shown := app.current.Decisions
	if len(shown) > maxVisibleDecisions {
		shown = shown[:maxVisibleDecisions]
	}
	for _, d := range shown {
		kind := decisionKindStyle(d.Kind).Render(pad(d.Kind, 10))
		age := StyleDim.Render(fmt.Sprintf("waiting %s", format.FormatAge(d.WaitingSince, now)))
		b.WriteString(fmt.Sprintf("%s %s  %s\n", kind, pad(d.Summary, 52), age))
	}
	if hidden := len(app.current.Decisions) - len(shown); hidden > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("+%d more", hidden)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func decisionKindStyle(kind string) lipgloss.Style {
	switch kind {
	case "injury":
		return StyleRed
	case "contract":
		return StyleYellow
	case "booking":
		return StyleCyan
	default:
		return StyleDim
	}
}
