package tui

import (
	"time"

	"github.com/dm/ringside/internal/model"
)

// OutcomeMsg delivers one accepted fetch outcome from the polling session to
// the TUI, together with its completion time.
type OutcomeMsg struct {
	Outcome     model.FetchOutcome
	CompletedAt time.Time
}
