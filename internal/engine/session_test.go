package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ringside/internal/model"
)

// countingFetcher always succeeds and counts its calls. If hold is non-nil,
// call number holdCall blocks on it, simulating an in-flight fetch.
type countingFetcher struct {
	mu       sync.Mutex
	calls    int
	holdCall int
	hold     chan struct{}
	started  chan struct{}
}

func (f *countingFetcher) fetch(_ context.Context) (*model.HealthSnapshot, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.hold != nil && n == f.holdCall {
		<-f.hold
	}
	return &model.HealthSnapshot{FetchedAt: time.Now()}, nil
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// longInterval keeps scheduled ticks out of a test's way.
const longInterval = time.Hour

func TestSession_FirstFetchIsImmediate(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 5*time.Millisecond, "first fetch runs on Start, not after one interval")

	updates := sink.all()
	require.Len(t, updates, 1)
	assert.True(t, updates[0].outcome.OK())
	assert.False(t, updates[0].at.IsZero())
}

func TestSession_FailureDoesNotStopLoop(t *testing.T) {
	sink := &recordSink{}
	fetch := func(_ context.Context) (*model.HealthSnapshot, error) {
		return nil, errMockFailure
	}
	s := NewSession(fetch, sink, Config{
		Interval:       10 * time.Millisecond,
		MaxRetries:     1,
		BaseRetryDelay: time.Millisecond,
	})

	s.Start()
	defer s.Stop()

	// At least two terminal Failure outcomes means the loop survived the
	// first exhaustion and fired the next tick.
	assert.Eventually(t, func() bool { return sink.count() >= 2 },
		time.Second, 5*time.Millisecond)

	for _, u := range sink.all() {
		require.NotNil(t, u.outcome.Err)
		assert.Equal(t, 2, u.outcome.Err.Attempts)
		assert.ErrorIs(t, u.outcome.Err, errMockFailure)
	}
}

func TestSession_StopDuringSleepHaltsWithoutFurtherUpdates(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	s.Start()
	require.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 5*time.Millisecond)

	// The loop is now in its inter-tick sleep. Stop blocks until the
	// goroutine has exited, so returning at all proves the halt.
	s.Stop()

	assert.Equal(t, 1, f.count())
	assert.Equal(t, 1, sink.count())

	// A late manual refresh must not revive anything.
	s.ManualRefresh()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sink.count())
}

func TestSession_StopIsIdempotent(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	s.Start()
	s.Stop()
	s.Stop()
	s.Start() // restart after Stop is a no-op
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, sink.count(), 1)
}

func TestSession_StopBeforeStart(t *testing.T) {
	s := NewSession((&countingFetcher{}).fetch, &recordSink{}, Config{})
	s.Stop() // must not hang or panic
	s.Start()
	time.Sleep(20 * time.Millisecond)
}

func TestSession_ManualRefreshWakesSleep(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	s.Start()
	defer s.Stop()
	require.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 5*time.Millisecond)

	// The next scheduled tick is an hour away; a manual refresh must not be.
	s.ManualRefresh()
	assert.Eventually(t, func() bool { return sink.count() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestSession_ManualRefreshCoalescesWhileInFlight(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{
		holdCall: 1,
		hold:     make(chan struct{}),
		started:  make(chan struct{}, 8),
	}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	s.Start()
	defer s.Stop()

	<-f.started // first fetch is now in flight

	// Two refresh requests against one in-flight fetch owe exactly one
	// follow-up, not two.
	s.ManualRefresh()
	s.ManualRefresh()
	close(f.hold)

	select {
	case <-f.started: // the single follow-up
	case <-time.After(time.Second):
		t.Fatal("coalesced follow-up fetch never started")
	}

	require.Eventually(t, func() bool { return sink.count() == 2 },
		time.Second, 5*time.Millisecond)

	// No third fetch: the two requests collapsed into one.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, f.count())
	assert.Equal(t, 2, sink.count())
}

func TestSession_OutcomesCarryCompletionTime(t *testing.T) {
	sink := &recordSink{}
	f := &countingFetcher{}
	s := NewSession(f.fetch, sink, Config{Interval: longInterval})

	before := time.Now()
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 5*time.Millisecond)

	u := sink.all()[0]
	assert.False(t, u.at.Before(before))
	assert.False(t, u.at.After(time.Now()))
}
