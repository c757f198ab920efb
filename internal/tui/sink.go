package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ringside/internal/model"
)

// sender is the slice of *tea.Program that the sink needs.
type sender interface {
	Send(msg tea.Msg)
}

// ProgramSink adapts a Bubble Tea program into an engine.StateSink: accepted
// outcomes become OutcomeMsg values on the program's message queue. Attach
// must be called before the owning session starts; OnUpdate calls before
// Attach are dropped.
type ProgramSink struct {
	mu     sync.Mutex
	target sender
}

func NewProgramSink() *ProgramSink {
	return &ProgramSink{}
}

// Attach binds the sink to a running program.
func (s *ProgramSink) Attach(p sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = p
}

// OnUpdate implements engine.StateSink.
func (s *ProgramSink) OnUpdate(outcome model.FetchOutcome, completedAt time.Time) {
	s.mu.Lock()
	target := s.target
	s.mu.Unlock()

	if target == nil {
		return
	}
	target.Send(OutcomeMsg{Outcome: outcome, CompletedAt: completedAt})
}
