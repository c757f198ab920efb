package tui

import (
	"sort"
	"strings"

	"github.com/dm/ringside/internal/client"
)

// severityRank orders alert severities for sorting: critical > warning > info.
func severityRank(severity string) int {
	switch severity {
	case "critical":
		return 3
	case "warning":
		return 2
	case "info":
		return 1
	default:
		return 0
	}
}

// sortAlerts returns a sorted copy of alerts.
// Column mapping: 0=Severity, 1=Source, 2=Message, 3=RaisedAt.
// col -1 means no sort (preserve the server's order).
// Ties are broken by RaisedAt, newest first.
func sortAlerts(alerts []client.AlertInfo, col int, desc bool) []client.AlertInfo {
	out := make([]client.AlertInfo, len(alerts))
	copy(out, alerts)

	if col < 0 {
		return out
	}

	newerFirst := func(a, b client.AlertInfo) bool {
		return a.RaisedAt.After(b.RaisedAt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			if severityRank(a.Severity) != severityRank(b.Severity) {
				less = severityRank(a.Severity) < severityRank(b.Severity)
			} else {
				return newerFirst(a, b)
			}
		case 1:
			if !strings.EqualFold(a.Source, b.Source) {
				less = strings.ToLower(a.Source) < strings.ToLower(b.Source)
			} else {
				return newerFirst(a, b)
			}
		case 2:
			if !strings.EqualFold(a.Message, b.Message) {
				less = strings.ToLower(a.Message) < strings.ToLower(b.Message)
			} else {
				return newerFirst(a, b)
			}
		case 3:
			if !a.RaisedAt.Equal(b.RaisedAt) {
				less = a.RaisedAt.Before(b.RaisedAt)
			} else {
				return strings.ToLower(a.Message) < strings.ToLower(b.Message)
			}
		default:
			return false
		}
		if desc {
			return !less
		}
		return less
	})

	return out
}

// filterAlerts returns the indices of alerts matching the filter string
// (case-insensitive substring over severity, source, and message).
// An empty filter matches everything.
func filterAlerts(alerts []client.AlertInfo, filter string) []int {
	idx := make([]int, 0, len(alerts))
	needle := strings.ToLower(strings.TrimSpace(filter))
	for i, a := range alerts {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Severity), needle) ||
			strings.Contains(strings.ToLower(a.Source), needle) ||
			strings.Contains(strings.ToLower(a.Message), needle) {
			idx = append(idx, i)
		}
	}
	return idx
}
