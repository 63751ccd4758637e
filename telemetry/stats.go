package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStart int `csv:"-"`
	WindowEnd   int `csv:"window_end"`

	// Population at window end
	Population int `csv:"population"`

	// Events during the window
	Births        int `csv:"births"`
	BirthsLost    int `csv:"births_lost"`
	DeathsStarved int `csv:"deaths_starved"`
	DeathsAged    int `csv:"deaths_aged"`
	DeathsKilled  int `csv:"deaths_killed"`
	DeathsCulled  int `csv:"deaths_culled"`
	Fights        int `csv:"fights"`
	GiveWays      int `csv:"give_ways"`
	Moves         int `csv:"moves"`
	Mutations     int `csv:"mutations"`
	GlobalEvents  int `csv:"global_events"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Trait averages (sampled at window end)
	AvgStrength    float64 `csv:"avg_strength"`
	AvgMobility    float64 `csv:"avg_mobility"`
	AvgCooperation float64 `csv:"avg_cooperation"`

	// Dominant color cluster (sampled at window end)
	DominantR     float64 `csv:"dominant_r"`
	DominantG     float64 `csv:"dominant_g"`
	DominantB     float64 `csv:"dominant_b"`
	DominantCount int     `csv:"dominant_count"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("population", s.Population),
		slog.Int("births", s.Births),
		slog.Int("births_lost", s.BirthsLost),
		slog.Int("deaths_starved", s.DeathsStarved),
		slog.Int("deaths_aged", s.DeathsAged),
		slog.Int("deaths_killed", s.DeathsKilled),
		slog.Int("deaths_culled", s.DeathsCulled),
		slog.Int("fights", s.Fights),
		slog.Int("give_ways", s.GiveWays),
		slog.Int("moves", s.Moves),
		slog.Int("mutations", s.Mutations),
		slog.Int("global_events", s.GlobalEvents),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("avg_strength", s.AvgStrength),
		slog.Float64("avg_mobility", s.AvgMobility),
		slog.Float64("avg_cooperation", s.AvgCooperation),
		slog.Float64("dominant_r", s.DominantR),
		slog.Float64("dominant_g", s.DominantG),
		slog.Float64("dominant_b", s.DominantB),
		slog.Int("dominant_count", s.DominantCount),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
