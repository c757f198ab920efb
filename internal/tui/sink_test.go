package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ringside/internal/model"
)

// fakeSender records messages handed to Send.
type fakeSender struct{ msgs []tea.Msg }

func (f *fakeSender) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

func TestProgramSink_ForwardsOutcomes(t *testing.T) {
	sink := NewProgramSink()
	target := &fakeSender{}
	sink.Attach(target)

	snap := makeFixtureSnapshot()
	at := time.Now()
	sink.OnUpdate(model.Success(snap, 1), at)

	require.Len(t, target.msgs, 1)
	msg, ok := target.msgs[0].(OutcomeMsg)
	require.True(t, ok)
	assert.Equal(t, snap, msg.Outcome.Snapshot)
	assert.Equal(t, at, msg.CompletedAt)
}

func TestProgramSink_DropsBeforeAttach(t *testing.T) {
	sink := NewProgramSink()

	// Must not panic; the update is simply lost.
	sink.OnUpdate(model.Success(makeFixtureSnapshot(), 1), time.Now())

	target := &fakeSender{}
	sink.Attach(target)
	sink.OnUpdate(model.Failure(assert.AnError, 4), time.Now())

	require.Len(t, target.msgs, 1)
	msg := target.msgs[0].(OutcomeMsg)
	require.NotNil(t, msg.Outcome.Err)
	assert.Equal(t, 4, msg.Outcome.Err.Attempts)
}
