package engine

import (
	"sync"
	"time"

	"github.com/dm/ringside/internal/model"
)

// StateSink receives accepted outcomes for rendering. OnUpdate is called at
// most once per accepted outcome, in strictly increasing sequence order, and
// never after the owning session has been stopped. Implementations should
// return quickly; the coordinator holds its lock across the call to keep
// delivery ordered.
type StateSink interface {
	OnUpdate(outcome model.FetchOutcome, completedAt time.Time)
}

// coordinator arbitrates between scheduled ticks and manual refreshes on the
// publishing side: it stamps each fetch request with a strictly increasing
// sequence number and discards any completion older than the newest one
// already delivered, so a slow request can never overwrite fresher data.
type coordinator struct {
	sink StateSink

	mu        sync.Mutex
	nextSeq   uint64
	published uint64 // highest sequence delivered; 0 = none yet
	closed    bool
}

func newCoordinator(sink StateSink) *coordinator {
	return &coordinator{sink: sink}
}

// stamp reserves the next sequence number for a fetch about to start.
func (c *coordinator) stamp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSeq++
	return c.nextSeq
}

// publish forwards the outcome to the sink unless the coordinator has been
// closed or a newer sequence has already been delivered. Returns whether the
// outcome was accepted.
func (c *coordinator) publish(seq uint64, outcome model.FetchOutcome, completedAt time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq <= c.published {
		return false
	}
	c.published = seq
	c.sink.OnUpdate(outcome, completedAt)
	return true
}

// close stops all future delivery. Idempotent.
func (c *coordinator) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
