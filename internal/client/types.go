package client

import "time"

// ServerStatus represents the response from /api/ops/status.
type ServerStatus struct {
	Promotion   string        `json:"promotion"`
	Status      string        `json:"status"` // "ok", "degraded", "down"
	Metrics     ServerMetrics `json:"metrics"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ServerMetrics holds the GM server's self-reported performance numbers.
type ServerMetrics struct {
	SimTicksPerSecond float64 `json:"sim_ticks_per_second"`
	EventQueueDepth   int64   `json:"event_queue_depth"`
	ActiveSessions    int64   `json:"active_sessions"`
	SaveLatencyMS     float64 `json:"save_latency_ms"`
}

// AlertInfo represents a single alert entry from /api/ops/alerts.
// Alerts are computed server-side; the dashboard only relays them.
type AlertInfo struct {
	Severity string    `json:"severity"` // "info", "warning", "critical"
	Source   string    `json:"source"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raised_at"`
}

// DecisionInfo represents one booking-office item awaiting a human decision,
// from /api/ops/decisions.
type DecisionInfo struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"` // "contract", "booking", "injury", ...
	Summary      string    `json:"summary"`
	WaitingSince time.Time `json:"waiting_since"`
}
