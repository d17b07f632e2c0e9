package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// HealthStatus is the health of one component or of the service overall.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth is the health of one checked subsystem.
type ComponentHealth struct {
	Name      string       `json:"name"`
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// HealthCheckResult is the outcome of checking every registered component.
type HealthCheckResult struct {
	Status     HealthStatus               `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     time.Duration              `json:"uptime"`
	Version    string                     `json:"version"`
	Components map[string]ComponentHealth `json:"components"`
	System     SystemHealth               `json:"system"`
}

// SystemHealth carries process-level runtime metrics.
type SystemHealth struct {
	MemoryUsage float64 `json:"memory_usage_percent"`
	Goroutines  int     `json:"goroutines"`
}

// HealthCheckFunc checks one component's health.
type HealthCheckFunc func(ctx context.Context) ComponentHealth

// HealthChecker aggregates component checks. The recognizer's readiness is
// registered as a component the way the teacher registered its database
// ping, since both answer the same question: "can this process do its job".
type HealthChecker struct {
	mu         sync.RWMutex
	components map[string]HealthCheckFunc
	startTime  time.Time
	version    string
}

// NewHealthChecker creates a HealthChecker that reports version in its
// result.
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{
		components: make(map[string]HealthCheckFunc),
		startTime:  time.Now(),
		version:    version,
	}
}

// RegisterComponent adds a named component check.
func (hc *HealthChecker) RegisterComponent(name string, checkFunc HealthCheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.components[name] = checkFunc
}

// Check runs every registered component check and aggregates the result.
func (hc *HealthChecker) Check(ctx context.Context) HealthCheckResult {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	components := make(map[string]ComponentHealth, len(hc.components))
	overall := HealthStatusHealthy

	for name, checkFunc := range hc.components {
		health := checkFunc(ctx)
		components[name] = health
		switch health.Status {
		case HealthStatusUnhealthy:
			overall = HealthStatusUnhealthy
		case HealthStatusDegraded:
			if overall == HealthStatusHealthy {
				overall = HealthStatusDegraded
			}
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryUsage := float64(m.Alloc) / float64(m.Sys) * 100
	if memoryUsage > 100 {
		memoryUsage = 100
	}

	return HealthCheckResult{
		Status:     overall,
		Timestamp:  time.Now(),
		Uptime:     time.Since(hc.startTime),
		Version:    hc.version,
		Components: components,
		System: SystemHealth{
			MemoryUsage: memoryUsage,
			Goroutines:  runtime.NumGoroutine(),
		},
	}
}

// LogHealthStatus writes one summary log line, then one warning line per
// component that isn't healthy.
func (hc *HealthChecker) LogHealthStatus() {
	result := hc.Check(context.Background())

	slog.Info("health check",
		"status", result.Status,
		"uptime", result.Uptime,
		"components", len(result.Components),
		"goroutines", result.System.Goroutines,
		"memory_usage", fmt.Sprintf("%.2f%%", result.System.MemoryUsage),
	)

	for name, component := range result.Components {
		if component.Status != HealthStatusHealthy {
			slog.Warn("component health issue",
				"component", name,
				"status", component.Status,
				"message", component.Message,
			)
		}
	}
}

// recognizerComponent reports whether a compiled recognizer is loaded and
// ready to serve /detect.
func recognizerComponent(ready func() bool) HealthCheckFunc {
	return func(ctx context.Context) ComponentHealth {
		status := HealthStatusHealthy
		message := "recognizer is compiled and ready"
		if !ready() {
			status = HealthStatusUnhealthy
			message = "recognizer is not yet compiled"
		}
		return ComponentHealth{
			Name:      "recognizer",
			Status:    status,
			Message:   message,
			Timestamp: time.Now(),
		}
	}
}
