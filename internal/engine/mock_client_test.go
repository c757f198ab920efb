package engine

import (
	"context"
	"errors"

	"github.com/dm/ringside/internal/client"
)

// MockOpsClient implements client.OpsClient for testing.
type MockOpsClient struct {
	StatusFn    func(ctx context.Context) (*client.ServerStatus, error)
	AlertsFn    func(ctx context.Context) ([]client.AlertInfo, error)
	DecisionsFn func(ctx context.Context) ([]client.DecisionInfo, error)
}

func (m *MockOpsClient) GetStatus(ctx context.Context) (*client.ServerStatus, error) {
	if m.StatusFn != nil {
		return m.StatusFn(ctx)
	}
	return &client.ServerStatus{Promotion: "test-fed", Status: "ok"}, nil
}

func (m *MockOpsClient) GetAlerts(ctx context.Context) ([]client.AlertInfo, error) {
	if m.AlertsFn != nil {
		return m.AlertsFn(ctx)
	}
	return []client.AlertInfo{{Severity: "info", Message: "show booked"}}, nil
}

func (m *MockOpsClient) GetDecisions(ctx context.Context) ([]client.DecisionInfo, error) {
	if m.DecisionsFn != nil {
		return m.DecisionsFn(ctx)
	}
	return []client.DecisionInfo{{ID: "d-1", Kind: "contract"}}, nil
}

func (m *MockOpsClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockOpsClient) BaseURL() string {
	return "http://mock:7700"
}

var errMockFailure = errors.New("mock failure")
