package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ringside/internal/format"
)

// alertColumns defines the alerts table layout. Digit keys 1-4 sort by the
// corresponding column.
var alertColumns = []columnDef{
	{Title: "Severity", Width: 10},
	{Title: "Source", Width: 14},
	{Title: "Message", Width: 44},
	{Title: "Age", Width: 6},
}

// renderAlerts renders the alerts panel: title line, filter input when
// active, column headers, and one row per visible alert.
func renderAlerts(app *App) string {
	if app.current == nil {
		return ""
	}

	alerts := sortAlerts(app.current.Alerts, app.alerts.sortCol, app.alerts.sortDesc)
	visible := filterAlerts(alerts, app.alerts.search)
	app.alerts.clampPage(len(visible))
	pageIdx := currentPageIndices(visible, app.alerts.page, app.alerts.pageSize)

	var b strings.Builder

	title := fmt.Sprintf("ALERTS (%d)", len(app.current.Alerts))
	if app.alerts.search != "" {
		title += fmt.Sprintf("  [filter: %s]", app.alerts.search)
	}
	if pc := pageCount(len(visible), app.alerts.pageSize); pc > 1 {
		title += fmt.Sprintf("  page %d/%d", app.alerts.page+1, pc)
	}
	b.WriteString(StyleSectionTitle.Render(title))
	b.WriteString("\n")

	if app.alerts.searching {
		b.WriteString(app.alerts.input.View())
		b.WriteString("\n")
	}

	if len(app.current.Alerts) == 0 {
		b.WriteString(StyleDim.Render("no active alerts"))
		return b.String()
	}

	// Column headers.
	var heads []string
	for _, col := range alertColumns {
		heads = append(heads, pad(col.Title, col.Width))
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(heads, " ")))
	b.WriteString("\n")

	now := time.Now()
	for _, i := range pageIdx {
		a := alerts[i]
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			SeverityStyle(a.Severity).Render(pad(a.Severity, alertColumns[0].Width)), " ",
			StyleTableRow.Render(pad(a.Source, alertColumns[1].Width)), " ",
			StyleTableRow.Render(pad(a.Message, alertColumns[2].Width)), " ",
			StyleDim.Render(pad(format.FormatAge(a.RaisedAt, now), alertColumns[3].Width)),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString(StyleDim.Render("no alerts match the filter"))
	}

	return strings.TrimRight(b.String(), "\n")
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
