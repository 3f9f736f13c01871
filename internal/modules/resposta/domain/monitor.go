package domain

import (
	"github.com/golangid/questionario-service/pkg/queue"
)

// Health classification labels
const (
	HealthStatusHealthy   = "Healthy"
	HealthStatusWarning   = "Warning"
	HealthStatusUnhealthy = "Unhealthy"
)

// HealthStatus queue health snapshot produced by the monitor cycle
type HealthStatus struct {
	IsHealthy              bool           `json:"isHealthy"`
	Status                 string         `json:"status"`
	Message                string         `json:"message"`
	Warnings               []string       `json:"warnings,omitempty"`
	QueueMetrics           *queue.Metrics `json:"queueMetrics,omitempty"`
	DeadLetterQueueMetrics *queue.Metrics `json:"deadLetterQueueMetrics,omitempty"`
}

// ReprocessResult dead letter drain outcome, counters are independent,
// ReprocessedCount+FailedCount equals the number of attempted messages
type ReprocessResult struct {
	ReprocessedCount int `json:"reprocessedCount"`
	FailedCount      int `json:"failedCount"`
}

// MonitorFilaResult full outcome of one monitor cycle. Reprocess is nil
// when the dead letter destination was absent or empty.
type MonitorFilaResult struct {
	Health    HealthStatus     `json:"health"`
	Reprocess *ReprocessResult `json:"reprocess,omitempty"`
}
