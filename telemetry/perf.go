package telemetry

import (
	"log/slog"
	"time"
)

// PerfCollector tracks tick timing over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int
	tickStart   time.Time
}

// NewPerfCollector creates a performance collector averaging over
// windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// StartTick begins timing a simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	d := time.Since(p.tickStart)
	p.samples[p.writeIndex] = d
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated tick-timing statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64
}

// Stats aggregates the rolling window. Zero-valued when no ticks were
// recorded yet.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{}
	}

	var total time.Duration
	min := p.samples[0]
	max := p.samples[0]
	for i := 0; i < p.sampleCount; i++ {
		d := p.samples[i]
		total += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	avg := total / time.Duration(p.sampleCount)
	tps := 0.0
	if avg > 0 {
		tps = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		AvgTickDuration: avg,
		MinTickDuration: min,
		MaxTickDuration: max,
		TicksPerSecond:  tps,
	}
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("avg_tick", s.AvgTickDuration),
		slog.Duration("min_tick", s.MinTickDuration),
		slog.Duration("max_tick", s.MaxTickDuration),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	)
}
