package dispatch

import (
	"sync/atomic"
	"time"
)

// Metrics tracks dispatch activity.
type Metrics struct {
	// Counters
	pressesTotal    atomic.Uint64
	matchesTotal    atomic.Uint64
	missesTotal     atomic.Uint64
	chordsEntered   atomic.Uint64
	chordsAbandoned atomic.Uint64
	rebuilds        atomic.Uint64

	// Latency
	totalLatency atomic.Int64
	peakLatency  atomic.Int64

	startTime time.Time

	enabled atomic.Bool
}

// NewMetrics creates an enabled metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordPress records one press with its resolution time.
func (m *Metrics) RecordPress(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.pressesTotal.Add(1)
	m.totalLatency.Add(latency.Nanoseconds())

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}
}

// RecordMatch records a binding that fired.
func (m *Metrics) RecordMatch() {
	if m.enabled.Load() {
		m.matchesTotal.Add(1)
	}
}

// RecordMiss records an idle press with no binding.
func (m *Metrics) RecordMiss() {
	if m.enabled.Load() {
		m.missesTotal.Add(1)
	}
}

// RecordChordEntered records a press that began a chord.
func (m *Metrics) RecordChordEntered() {
	if m.enabled.Load() {
		m.chordsEntered.Add(1)
	}
}

// RecordChordAbandoned records a chord that did not complete.
func (m *Metrics) RecordChordAbandoned() {
	if m.enabled.Load() {
		m.chordsAbandoned.Add(1)
	}
}

// RecordRebuild records a table swap.
func (m *Metrics) RecordRebuild() {
	if m.enabled.Load() {
		m.rebuilds.Add(1)
	}
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	PressesTotal    uint64
	MatchesTotal    uint64
	MissesTotal     uint64
	ChordsEntered   uint64
	ChordsAbandoned uint64
	Rebuilds        uint64

	AvgLatency  time.Duration
	PeakLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		PressesTotal:    m.pressesTotal.Load(),
		MatchesTotal:    m.matchesTotal.Load(),
		MissesTotal:     m.missesTotal.Load(),
		ChordsEntered:   m.chordsEntered.Load(),
		ChordsAbandoned: m.chordsAbandoned.Load(),
		Rebuilds:        m.rebuilds.Load(),
		PeakLatency:     time.Duration(m.peakLatency.Load()),
		Uptime:          time.Since(m.startTime),
	}
	if snap.PressesTotal > 0 {
		snap.AvgLatency = time.Duration(m.totalLatency.Load() / int64(snap.PressesTotal))
	}
	return snap
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.pressesTotal.Store(0)
	m.matchesTotal.Store(0)
	m.missesTotal.Store(0)
	m.chordsEntered.Store(0)
	m.chordsAbandoned.Store(0)
	m.rebuilds.Store(0)
	m.totalLatency.Store(0)
	m.peakLatency.Store(0)
}
