package highmark

import (
	"sync"
	"time"

	"github.com/13byte/highmark/toggle"
)

// Metrics collects toggle statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-mode metrics
	modeMetrics map[Mode]*ModeMetrics

	// Global counters
	totalToggles uint64
	totalErrors  uint64
	totalPanics  uint64

	// Timing
	totalDuration time.Duration
}

// ModeMetrics holds metrics for a specific view mode.
type ModeMetrics struct {
	Mode          Mode
	Toggles       uint64
	Added         uint64
	Removed       uint64
	Errors        uint64
	Panics        uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastAction    toggle.Action
	LastToggle    time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		modeMetrics: make(map[Mode]*ModeMetrics),
	}
}

// RecordToggle records a completed toggle, successful or not.
func (m *Metrics) RecordToggle(mode Mode, action toggle.Action, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalToggles++
	m.totalDuration += duration

	if err != nil {
		m.totalErrors++
	}

	mm := m.modeMetrics[mode]
	if mm == nil {
		mm = &ModeMetrics{
			Mode:        mode,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.modeMetrics[mode] = mm
	}

	mm.Toggles++
	mm.TotalDuration += duration
	mm.LastAction = action
	mm.LastToggle = time.Now()

	if duration < mm.MinDuration {
		mm.MinDuration = duration
	}
	if duration > mm.MaxDuration {
		mm.MaxDuration = duration
	}

	switch {
	case err != nil:
		mm.Errors++
	case action == toggle.ActionAdded:
		mm.Added++
	case action == toggle.ActionRemoved:
		mm.Removed++
	}
}

// RecordPanic records a panic recovery. The accompanying RecordToggle
// call counts the error; this counts only the panic itself.
func (m *Metrics) RecordPanic(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++

	if mm := m.modeMetrics[mode]; mm != nil {
		mm.Panics++
	} else {
		m.modeMetrics[mode] = &ModeMetrics{Mode: mode, Panics: 1}
	}
}

// TotalToggles returns the total number of toggles recorded.
func (m *Metrics) TotalToggles() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalToggles
}

// TotalErrors returns the total number of failed toggles.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalDuration returns the total duration of all toggles.
func (m *Metrics) TotalDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDuration
}

// AverageDuration returns the average toggle duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalToggles == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalToggles)
}

// ModeStats returns metrics for a specific mode, or nil if the mode has
// never toggled.
func (m *Metrics) ModeStats(mode Mode) *ModeMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mm := m.modeMetrics[mode]
	if mm == nil {
		return nil
	}

	// Return a copy
	copy := *mm
	return &copy
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modeMetrics = make(map[Mode]*ModeMetrics)
	m.totalToggles = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time snapshot of all metrics.
type MetricsSnapshot struct {
	TotalToggles    uint64
	TotalErrors     uint64
	TotalPanics     uint64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	ModeCount       int
	Timestamp       time.Time
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := MetricsSnapshot{
		TotalToggles:  m.totalToggles,
		TotalErrors:   m.totalErrors,
		TotalPanics:   m.totalPanics,
		TotalDuration: m.totalDuration,
		ModeCount:     len(m.modeMetrics),
		Timestamp:     time.Now(),
	}

	if m.totalToggles > 0 {
		snapshot.AverageDuration = m.totalDuration / time.Duration(m.totalToggles)
	}

	return snapshot
}

// AverageModeDuration returns the average duration for this mode.
func (mm *ModeMetrics) AverageModeDuration() time.Duration {
	if mm.Toggles == 0 {
		return 0
	}
	return mm.TotalDuration / time.Duration(mm.Toggles)
}

// ErrorRate returns the error rate as a percentage.
func (mm *ModeMetrics) ErrorRate() float64 {
	if mm.Toggles == 0 {
		return 0
	}
	return float64(mm.Errors) / float64(mm.Toggles) * 100
}
