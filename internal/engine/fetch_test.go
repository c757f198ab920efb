package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ringside/internal/client"
)

func TestFetchHealth_AllSuccess(t *testing.T) {
	status := &client.ServerStatus{
		Promotion: "GCW",
		Status:    "ok",
		Metrics: client.ServerMetrics{
			SimTicksPerSecond: 48.5,
			EventQueueDepth:   12,
			ActiveSessions:    3,
			SaveLatencyMS:     7.2,
		},
		GeneratedAt: time.Now().Add(-time.Second),
	}
	alerts := []client.AlertInfo{
		{Severity: "warning", Source: "roster", Message: "morale dropping on the midcard"},
		{Severity: "info", Source: "booker", Message: "main event locked"},
	}
	decisions := []client.DecisionInfo{
		{ID: "dec-7", Kind: "contract", Summary: "renewal offer expiring"},
	}

	mc := &MockOpsClient{
		StatusFn:    func(_ context.Context) (*client.ServerStatus, error) { return status, nil },
		AlertsFn:    func(_ context.Context) ([]client.AlertInfo, error) { return alerts, nil },
		DecisionsFn: func(_ context.Context) ([]client.DecisionInfo, error) { return decisions, nil },
	}

	snap, err := FetchHealth(context.Background(), mc)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "GCW", snap.Status.Promotion)
	assert.Equal(t, "ok", snap.Status.Status)
	assert.Equal(t, 48.5, snap.Status.Metrics.SimTicksPerSecond)
	assert.Equal(t, alerts, snap.Alerts)
	assert.Equal(t, decisions, snap.Decisions)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestFetchHealth_PartialFailure(t *testing.T) {
	mc := &MockOpsClient{
		// Status succeeds
		StatusFn: func(_ context.Context) (*client.ServerStatus, error) {
			return &client.ServerStatus{Status: "ok"}, nil
		},
		// Alerts fails
		AlertsFn: func(_ context.Context) ([]client.AlertInfo, error) {
			return nil, errMockFailure
		},
	}

	snap, err := FetchHealth(context.Background(), mc)
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestFetchHealth_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before calling FetchHealth

	mc := &MockOpsClient{}
	// The mock does not honour context by itself, so make one endpoint check
	// it explicitly; errgroup propagates the first error.
	mc.StatusFn = func(ctx context.Context) (*client.ServerStatus, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &client.ServerStatus{Status: "ok"}, nil
	}

	snap, err := FetchHealth(ctx, mc)
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestFetcher_WrapsClient(t *testing.T) {
	mc := &MockOpsClient{}
	fetch := Fetcher(mc)

	snap, err := fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "test-fed", snap.Status.Promotion)
}
