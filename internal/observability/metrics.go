package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process counters for the console's HTTP surface: handled
// requests with accumulated latency, and requests rejected with a domain
// error code. There is no exporter; the counters are read in tests and
// debugging sessions.
type Metrics struct {
	mu        sync.Mutex
	requests  map[string]int64
	latencies map[string]time.Duration
	failures  map[string]int64
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:  make(map[string]int64),
		latencies: make(map[string]time.Duration),
		failures:  make(map[string]int64),
	}
}

// RecordRequest counts one handled request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.latencies[key] += duration
}

// RecordError counts one request rejected with the given domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := method + " " + path + " " + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[key]++
}

// RequestCount reports how many requests were handled for the key.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey(path, method, status)]
}

// ErrorCount reports how many requests failed with the code for the key.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[method+" "+path+" "+code]
}

func requestKey(path, method string, status int) string {
	return method + " " + path + " " + strconv.Itoa(status)
}
