package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/ringside/internal/client"
	"github.com/dm/ringside/internal/model"
)

// FetchHealth calls the GM server's three ops endpoints concurrently and
// assembles one HealthSnapshot. If any endpoint fails, FetchHealth returns
// the first error; the caller's retry policy decides what happens next.
func FetchHealth(ctx context.Context, c client.OpsClient) (*model.HealthSnapshot, error) {
	var (
		status    *client.ServerStatus
		alerts    []client.AlertInfo
		decisions []client.DecisionInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		status, err = c.GetStatus(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		alerts, err = c.GetAlerts(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		decisions, err = c.GetDecisions(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if status == nil {
		return nil, fmt.Errorf("FetchHealth: incomplete response (unexpected nil)")
	}

	snap := &model.HealthSnapshot{
		Status:    *status,
		Alerts:    alerts,
		Decisions: decisions,
		FetchedAt: time.Now(),
	}
	return snap, nil
}

// Fetcher adapts an OpsClient into the StatusFetcher shape used by Session.
func Fetcher(c client.OpsClient) StatusFetcher {
	return func(ctx context.Context) (*model.HealthSnapshot, error) {
		return FetchHealth(ctx, c)
	}
}
