package apperr

import (
	"sync"
	"time"
)

// MetricsCollector accumulates error counts for the /version surface to
// report on, without ever touching the recognition hot path.
type MetricsCollector struct {
	mu sync.RWMutex

	totalErrors      int64
	errorsByType     map[string]int64
	errorsByCode     map[int]int64
	errorsByEndpoint map[string]int64
	errorsByTime     []TimeBucket

	lastErrors    []ErrorRecord
	maxLastErrors int

	startTime time.Time
}

// TimeBucket aggregates errors within one minute-wide window.
type TimeBucket struct {
	Time   time.Time
	Count  int64
	ByType map[string]int64
	ByCode map[int]int64
}

// ErrorRecord is one recorded error occurrence.
type ErrorRecord struct {
	Timestamp   time.Time
	Type        string
	Code        int
	Message     string
	Endpoint    string
	RequestID   string
	UserMessage string
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		errorsByType:     make(map[string]int64),
		errorsByCode:     make(map[int]int64),
		errorsByEndpoint: make(map[string]int64),
		maxLastErrors:    100,
		startTime:        time.Now(),
	}
}

// Record registers one error occurrence.
func (mc *MetricsCollector) Record(err *AppError, endpoint, requestID string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.totalErrors++

	errorType := errorTypeOf(err.Code)
	mc.errorsByType[errorType]++
	mc.errorsByCode[err.Code]++
	if endpoint != "" {
		mc.errorsByEndpoint[endpoint]++
	}

	mc.addToTimeBucket(errorType, err.Code)

	record := ErrorRecord{
		Timestamp:   time.Now(),
		Type:        errorType,
		Code:        err.Code,
		Message:     err.Error(),
		Endpoint:    endpoint,
		RequestID:   requestID,
		UserMessage: err.UserMessage(),
	}
	mc.lastErrors = append([]ErrorRecord{record}, mc.lastErrors...)
	if len(mc.lastErrors) > mc.maxLastErrors {
		mc.lastErrors = mc.lastErrors[:mc.maxLastErrors]
	}
}

func errorTypeOf(code int) string {
	switch code {
	case 400:
		return "ValidationError"
	case 404:
		return "NotFoundError"
	case 500:
		return "InternalError"
	case 503:
		return "ServiceUnavailableError"
	default:
		return "UnknownError"
	}
}

func (mc *MetricsCollector) addToTimeBucket(errorType string, code int) {
	now := time.Now()
	currentMinute := now.Truncate(time.Minute)

	found := false
	for i := range mc.errorsByTime {
		if mc.errorsByTime[i].Time.Equal(currentMinute) {
			mc.errorsByTime[i].Count++
			mc.errorsByTime[i].ByType[errorType]++
			mc.errorsByTime[i].ByCode[code]++
			found = true
			break
		}
	}

	if !found {
		mc.errorsByTime = append([]TimeBucket{{
			Time:   currentMinute,
			Count:  1,
			ByType: map[string]int64{errorType: 1},
			ByCode: map[int]int64{code: 1},
		}}, mc.errorsByTime...)
	}

	oneHourAgo := now.Add(-1 * time.Hour)
	filtered := make([]TimeBucket, 0, len(mc.errorsByTime))
	for _, bucket := range mc.errorsByTime {
		if bucket.Time.After(oneHourAgo) {
			filtered = append(filtered, bucket)
		}
	}
	mc.errorsByTime = filtered
}

// Snapshot returns a point-in-time, copy-safe view of all metrics.
func (mc *MetricsCollector) Snapshot() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	errorsByType := make(map[string]int64, len(mc.errorsByType))
	for k, v := range mc.errorsByType {
		errorsByType[k] = v
	}
	errorsByCode := make(map[int]int64, len(mc.errorsByCode))
	for k, v := range mc.errorsByCode {
		errorsByCode[k] = v
	}
	errorsByEndpoint := make(map[string]int64, len(mc.errorsByEndpoint))
	for k, v := range mc.errorsByEndpoint {
		errorsByEndpoint[k] = v
	}

	timeBuckets := make([]TimeBucket, len(mc.errorsByTime))
	copy(timeBuckets, mc.errorsByTime)
	lastErrors := make([]ErrorRecord, len(mc.lastErrors))
	copy(lastErrors, mc.lastErrors)

	return map[string]interface{}{
		"total_errors":       mc.totalErrors,
		"errors_by_type":     errorsByType,
		"errors_by_code":     errorsByCode,
		"errors_by_endpoint": errorsByEndpoint,
		"time_buckets":       timeBuckets,
		"last_errors":        lastErrors,
		"uptime_seconds":     time.Since(mc.startTime).Seconds(),
		"errors_per_minute":  mc.errorsPerMinute(),
	}
}

func (mc *MetricsCollector) errorsPerMinute() float64 {
	if len(mc.errorsByTime) == 0 {
		return 0
	}
	var total int64
	for _, bucket := range mc.errorsByTime {
		total += bucket.Count
	}
	return float64(total) / float64(len(mc.errorsByTime))
}

// Reset clears all recorded metrics.
func (mc *MetricsCollector) Reset() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.totalErrors = 0
	mc.errorsByType = make(map[string]int64)
	mc.errorsByCode = make(map[int]int64)
	mc.errorsByEndpoint = make(map[string]int64)
	mc.errorsByTime = nil
	mc.lastErrors = nil
	mc.startTime = time.Now()
}
