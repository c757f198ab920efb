package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointStatus    = "/api/ops/status"
	endpointAlerts    = "/api/ops/alerts"
	endpointDecisions = "/api/ops/decisions"
)

// GetStatus fetches the server's health summary from /api/ops/status.
func (c *DefaultClient) GetStatus(ctx context.Context) (*ServerStatus, error) {
	body, err := c.doGet(ctx, endpointStatus)
	if err != nil {
		return nil, fmt.Errorf("GetStatus: %w", err)
	}

	var result ServerStatus
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetStatus: %w", &DecodeError{Endpoint: endpointStatus, Err: err})
	}
	return &result, nil
}

// GetAlerts fetches the current alert list from /api/ops/alerts.
// The server returns alerts newest-first; the order is preserved.
func (c *DefaultClient) GetAlerts(ctx context.Context) ([]AlertInfo, error) {
	body, err := c.doGet(ctx, endpointAlerts)
	if err != nil {
		return nil, fmt.Errorf("GetAlerts: %w", err)
	}

	var result []AlertInfo
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetAlerts: %w", &DecodeError{Endpoint: endpointAlerts, Err: err})
	}
	return result, nil
}

// GetDecisions fetches the booking-office queue from /api/ops/decisions.
func (c *DefaultClient) GetDecisions(ctx context.Context) ([]DecisionInfo, error) {
	body, err := c.doGet(ctx, endpointDecisions)
	if err != nil {
		return nil, fmt.Errorf("GetDecisions: %w", err)
	}

	var result []DecisionInfo
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetDecisions: %w", &DecodeError{Endpoint: endpointDecisions, Err: err})
	}
	return result, nil
}
