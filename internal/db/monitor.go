package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelreg/model-registry-api/internal/telemetry"
)

const (
	defaultCheckInterval = 30 * time.Second
	defaultPingTimeout   = 5 * time.Second
)

// HealthMonitor periodically pings MongoDB and reports the result
// as a gauge metric. Readiness probes read the last observed state
// instead of issuing a fresh ping per request.
type HealthMonitor struct {
	conn     *Connection
	metrics  *telemetry.HealthMetrics
	interval time.Duration
}

// MonitorOption configures a HealthMonitor
type MonitorOption func(*HealthMonitor)

// WithCheckInterval overrides the ping interval, mainly for tests
func WithCheckInterval(d time.Duration) MonitorOption {
	return func(m *HealthMonitor) {
		m.interval = d
	}
}

// NewHealthMonitor creates a health monitor for the given connection.
// Metrics may be nil when telemetry is disabled.
func NewHealthMonitor(conn *Connection, metrics *telemetry.HealthMetrics, opts ...MonitorOption) *HealthMonitor {
	m := &HealthMonitor{
		conn:     conn,
		metrics:  metrics,
		interval: defaultCheckInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run pings MongoDB on a fixed interval until the context is canceled.
// State transitions are logged once rather than on every tick.
func (m *HealthMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	healthy := m.check(ctx, true)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			healthy = m.check(ctx, healthy)
		}
	}
}

func (m *HealthMonitor) check(ctx context.Context, wasHealthy bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	err := m.conn.Ping(pingCtx)
	healthy := err == nil

	if m.metrics != nil {
		m.metrics.RecordMongoUp(ctx, healthy)
	}

	switch {
	case !healthy && wasHealthy:
		slog.Error("Mongo health check failed", "error", err)
	case healthy && !wasHealthy:
		slog.Info("Mongo health check recovered")
	}

	return healthy
}
