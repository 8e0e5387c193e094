package action

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const defaultLatencySamples = 1024

// Metrics tracks dispatch activity. It is safe to read from any goroutine.
type Metrics struct {
	events    atomic.Uint64
	triggers  atomic.Uint64
	unmatched atomic.Uint64
	ignored   atomic.Uint64
	frames    atomic.Uint64

	peakLatency atomic.Int64

	mu         sync.Mutex
	latencies  []time.Duration
	latencyIdx int
	startTime  time.Time

	enabled atomic.Bool
}

// NewMetrics creates an enabled metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		latencies: make([]time.Duration, defaultLatencySamples),
		startTime: time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled turns collection on or off.
func (m *Metrics) SetEnabled(enabled bool) { m.enabled.Store(enabled) }

// IsEnabled reports whether collection is on.
func (m *Metrics) IsEnabled() bool { return m.enabled.Load() }

// RecordEvent records one dispatched event that triggered n actions.
func (m *Metrics) RecordEvent(n int, latency time.Duration) {
	if !m.enabled.Load() {
		return
	}
	m.events.Add(1)
	if n == 0 {
		m.unmatched.Add(1)
	} else {
		m.triggers.Add(uint64(n))
	}

	ns := latency.Nanoseconds()
	for {
		cur := m.peakLatency.Load()
		if ns <= cur || m.peakLatency.CompareAndSwap(cur, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % len(m.latencies)
	m.mu.Unlock()
}

// RecordIgnored records an event dropped because its binding is invalid.
func (m *Metrics) RecordIgnored() {
	if m.enabled.Load() {
		m.ignored.Add(1)
	}
}

// RecordFrame records a frame boundary.
func (m *Metrics) RecordFrame() {
	if m.enabled.Load() {
		m.frames.Add(1)
	}
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	Events    uint64
	Triggers  uint64
	Unmatched uint64
	Ignored   uint64
	Frames    uint64

	AvgLatency  time.Duration
	MaxLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	samples := make([]time.Duration, len(m.latencies))
	copy(samples, m.latencies)
	start := m.startTime
	m.mu.Unlock()

	snap := Snapshot{
		Events:      m.events.Load(),
		Triggers:    m.triggers.Load(),
		Unmatched:   m.unmatched.Load(),
		Ignored:     m.ignored.Load(),
		Frames:      m.frames.Load(),
		PeakLatency: time.Duration(m.peakLatency.Load()),
		Uptime:      time.Since(start),
	}
	if snap.Uptime > 0 {
		snap.EventsPerSecond = float64(snap.Events) / snap.Uptime.Seconds()
	}
	snap.AvgLatency, snap.MaxLatency, snap.P99Latency = latencyStats(samples)
	return snap
}

// latencyStats computes average, max and p99 over the non-zero samples.
func latencyStats(samples []time.Duration) (avg, maxLat, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(samples))
	for _, l := range samples {
		if l > 0 {
			valid = append(valid, l)
		}
	}
	if len(valid) == 0 {
		return 0, 0, 0
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })

	var sum time.Duration
	for _, l := range valid {
		sum += l
	}
	avg = sum / time.Duration(len(valid))
	maxLat = valid[len(valid)-1]

	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	return avg, maxLat, valid[idx]
}

// Reset clears all counters and samples.
func (m *Metrics) Reset() {
	m.events.Store(0)
	m.triggers.Store(0)
	m.unmatched.Store(0)
	m.ignored.Store(0)
	m.frames.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, defaultLatencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
