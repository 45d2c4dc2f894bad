package blochviz

import (
	"sort"
	"sync"
	"time"
)

/*
Metrics counts what a session has done. It is the one piece of session data
that may be read from the renderer's animation loop, so it carries its own lock.
*/
type Metrics struct {
	mu sync.RWMutex

	GatesApplied          int64
	RotationsApplied      int64
	FramesEmitted         int64
	RejectedInputs        int64
	InfeasibleTransitions int64
	Clears                int64

	AverageStepLatency time.Duration
	P95StepLatency     time.Duration

	latencies  []time.Duration
	windowSize int
}

func newMetrics() *Metrics {
	return &Metrics{
		latencies:  make([]time.Duration, 0, 100),
		windowSize: 100,
	}
}

func (m *Metrics) recordStep(startTime time.Time, gate Gate, frames int) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.GatesApplied++
	if gate.Parameterized() {
		m.RotationsApplied++
	}
	m.FramesEmitted += int64(frames)

	m.updateLatency(duration)
}

func (m *Metrics) recordRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectedInputs++
}

func (m *Metrics) recordInfeasible() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfeasibleTransitions++
}

func (m *Metrics) recordClear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
}

func (m *Metrics) updateLatency(duration time.Duration) {
	m.AverageStepLatency = (m.AverageStepLatency*time.Duration(m.GatesApplied-1) + duration) / time.Duration(m.GatesApplied)

	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}

	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := int(float64(len(sorted)) * 0.95)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	m.P95StepLatency = sorted[p95Index]
}

// ExportMetrics returns a snapshot keyed by metric name.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gates_applied":          m.GatesApplied,
		"rotations_applied":      m.RotationsApplied,
		"frames_emitted":         m.FramesEmitted,
		"rejected_inputs":        m.RejectedInputs,
		"infeasible_transitions": m.InfeasibleTransitions,
		"clears":                 m.Clears,
		"avg_step_latency":       m.AverageStepLatency,
		"p95_step_latency":       m.P95StepLatency,
	}
}
