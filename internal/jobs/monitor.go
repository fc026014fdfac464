package jobs

import (
	"context"
	"log"
	"sync"
	"time"
)

// Pinger checks whether the upstream site answers.
type Pinger interface {
	Ping(ctx context.Context) (time.Duration, error)
}

// UpstreamStatus is the outcome of the most recent probe.
type UpstreamStatus struct {
	Reachable bool       `json:"reachable"`
	CheckedAt *time.Time `json:"checked_at"` // nil until the first probe finishes
	LatencyMS int64      `json:"latency_ms"`
	Error     string     `json:"error,omitempty"`
}

// Monitor probes the upstream site and keeps the last result.
type Monitor struct {
	pinger  Pinger
	timeout time.Duration

	mu      sync.Mutex
	status  UpstreamStatus
	running bool
}

func NewMonitor(p Pinger, timeout time.Duration) *Monitor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Monitor{pinger: p, timeout: timeout}
}

// Probe pings the upstream once and records the result. It returns false
// without probing when another probe is still in progress.
func (m *Monitor) Probe(ctx context.Context) bool {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return false
	}
	m.running = true
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	latency, err := m.pinger.Ping(ctx)

	checkedAt := time.Now().UTC()
	status := UpstreamStatus{
		Reachable: err == nil,
		CheckedAt: &checkedAt,
		LatencyMS: latency.Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
		log.Printf("Upstream probe failed after %s: %v", latency, err)
	}

	m.mu.Lock()
	m.status = status
	m.running = false
	m.mu.Unlock()
	return true
}

// Status returns a copy of the last probe result.
func (m *Monitor) Status() UpstreamStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}
