package gateway

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"
)

// HealthBroadcaster receives serialized health snapshots.
type HealthBroadcaster interface {
	Broadcast(payload []byte)
}

// Monitor periodically probes the fulfillment health endpoint and publishes
// the federated snapshot to websocket subscribers.
type Monitor struct {
	client   *Client
	hub      HealthBroadcaster
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
}

// NewMonitor returns a monitor polling at the given interval.
func NewMonitor(client *Client, hub HealthBroadcaster, logger *slog.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Monitor{
		client:   client,
		hub:      hub,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled. An immediate first probe runs
// before the ticker starts so subscribers have a snapshot right away.
func (m *Monitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	snapshot := map[string]any{
		"checked_at": m.now().UTC().Format(time.RFC3339Nano),
	}
	status, err := m.client.Health(ctx)
	if err != nil {
		snapshot["status"] = "unreachable"
		snapshot["error"] = err.Error()
	} else {
		snapshot["status"] = status.Status
		snapshot["fulfillment"] = status
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		m.logger.Error("failed to encode health snapshot", "error", err)
		return
	}
	m.hub.Broadcast(payload)
}
