package model

import (
	"time"

	"github.com/dm/ringside/internal/client"
)

// HealthSnapshot holds the result of one successful poll cycle across the
// GM server's three ops endpoints. Alerts and Decisions keep the server's
// order. A snapshot is never mutated after assembly.
type HealthSnapshot struct {
	Status    client.ServerStatus
	Alerts    []client.AlertInfo
	Decisions []client.DecisionInfo
	FetchedAt time.Time
}
