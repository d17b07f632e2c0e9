package httpapi

import (
	"sync"
	"time"
)

// requestMetrics tracks request counts and latency for the /version
// endpoint to report, independent of the per-error apperr.MetricsCollector.
type requestMetrics struct {
	mu sync.RWMutex

	total     int64
	success   int64
	failed    int64
	durations []time.Duration

	startTime time.Time
}

func newRequestMetrics() *requestMetrics {
	return &requestMetrics{startTime: time.Now()}
}

func (m *requestMetrics) record(success bool, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	if success {
		m.success++
	} else {
		m.failed++
	}

	m.durations = append(m.durations, d)
	if len(m.durations) > 1000 {
		m.durations = m.durations[len(m.durations)-1000:]
	}
}

func (m *requestMetrics) snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var avg time.Duration
	if len(m.durations) > 0 {
		var total time.Duration
		for _, d := range m.durations {
			total += d
		}
		avg = total / time.Duration(len(m.durations))
	}

	successRate := 0.0
	if m.total > 0 {
		successRate = float64(m.success) / float64(m.total) * 100
	}

	uptime := time.Since(m.startTime).Seconds()
	rps := 0.0
	if uptime > 0 {
		rps = float64(m.total) / uptime
	}

	return map[string]interface{}{
		"requests_total":      m.total,
		"requests_success":    m.success,
		"requests_error":      m.failed,
		"success_rate":        successRate,
		"avg_duration_ms":     avg.Milliseconds(),
		"requests_per_second": rps,
		"uptime_seconds":      uptime,
	}
}
