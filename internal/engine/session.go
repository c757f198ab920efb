package engine

import (
	"context"
	"sync"
	"time"
)

// autoRefreshInterval is the default spacing between scheduled fetches.
const autoRefreshInterval = 30 * time.Second

// Config tunes a Session. Zero values select the compiled-in defaults
// (30s interval, 3 retries, 1s base delay).
type Config struct {
	Interval       time.Duration
	MaxRetries     int
	BaseRetryDelay time.Duration
}

func (cfg *Config) applyDefaults() {
	if cfg.Interval <= 0 {
		cfg.Interval = autoRefreshInterval
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = maxRetryAttempts
	}
	if cfg.BaseRetryDelay <= 0 {
		cfg.BaseRetryDelay = baseRetryDelay
	}
}

// Session is one active polling instance: a single background goroutine that
// fetches a health snapshot per interval, retries failures with backoff, and
// delivers outcomes to the sink in sequence order. At most one fetch is in
// flight at any time; manual refreshes are coalesced, never concurrent.
//
// The zero Session is not usable; construct with NewSession.
type Session struct {
	fetch StatusFetcher
	coord *coordinator
	cfg   Config

	// Test seams; production values set in NewSession.
	sleep sleepFunc
	now   func() time.Time

	refreshCh chan struct{} // capacity 1: at most one owed follow-up
	done      chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	started bool
	stopped bool
}

// NewSession creates a session around the injected fetcher and sink.
// Polling does not begin until Start is called.
func NewSession(fetch StatusFetcher, sink StateSink, cfg Config) *Session {
	cfg.applyDefaults()
	return &Session{
		fetch:     fetch,
		coord:     newCoordinator(sink),
		cfg:       cfg,
		sleep:     sleepCtx,
		now:       time.Now,
		refreshCh: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start launches the polling goroutine. The first fetch is issued
// immediately, not after one interval. Calling Start twice, or after Stop,
// is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx)
}

// Stop cancels the session and blocks until the polling goroutine has
// exited, so no background work survives the caller. Idempotent. After Stop
// returns, the sink receives no further updates.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	cancel := s.cancel
	s.mu.Unlock()

	// Close the coordinator before cancelling so an outcome racing the
	// cancellation is dropped rather than delivered.
	s.coord.close()
	if cancel != nil {
		cancel()
	}
	if started {
		<-s.done
	}
}

// ManualRefresh requests an out-of-band fetch now. If the loop is sleeping
// it wakes immediately; if a fetch is in flight, exactly one follow-up fetch
// is owed once it completes. Further calls before that follow-up starts are
// no-ops, and calls after Stop are harmless.
func (s *Session) ManualRefresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// run is the polling loop. Cancellation is checked immediately before each
// fetch and observed during every sleep, so no fetch starts and nothing is
// published once the session is cancelled.
func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	for {
		if ctx.Err() != nil {
			return
		}

		// A refresh queued while we were waking up is satisfied by the
		// fetch about to run; drain it so it does not double-fire.
		select {
		case <-s.refreshCh:
		default:
		}

		seq := s.coord.stamp()
		outcome, err := fetchWithRetry(ctx, s.fetch, s.cfg.MaxRetries, s.cfg.BaseRetryDelay, s.sleep)
		if err != nil {
			return
		}
		s.coord.publish(seq, outcome, s.now())

		// A Failure outcome does not stop the loop; the next tick runs on
		// the normal schedule.
		t := time.NewTimer(s.cfg.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-s.refreshCh:
			t.Stop()
		case <-t.C:
		}
	}
}
