package world

import (
	"gonum.org/v1/gonum/stat"

	"github.com/aquintela/pixelife/components"
)

// DominantColor describes the most populous color cluster of the live
// population: the approximate reconstructed channel values and the number of
// agents in the cluster.
type DominantColor struct {
	R, G, B float64
	Count   int
}

// TraitAverages holds live-population means for the behavioral traits.
// All zeros when the population is empty.
type TraitAverages struct {
	Strength    float64
	Mobility    float64
	Cooperation float64
}

// DominantColorCluster buckets every live agent's color channels into a
// fixed number of bins per channel and returns the most populous bucket.
// ok is false when there are no live agents.
func (w *World) DominantColorCluster() (DominantColor, bool) {
	buckets := w.cfg.Stats.ColorBuckets

	counts := make(map[[3]int]int)
	query := w.filter.Query()
	for query.Next() {
		_, genome := query.Get()
		key := [3]int{
			colorBin(genome.ColorR, buckets),
			colorBin(genome.ColorG, buckets),
			colorBin(genome.ColorB, buckets),
		}
		counts[key]++
	}
	if len(counts) == 0 {
		return DominantColor{}, false
	}

	var best [3]int
	bestCount := -1
	for key, n := range counts {
		if n > bestCount || (n == bestCount && lessKey(key, best)) {
			best = key
			bestCount = n
		}
	}

	return DominantColor{
		R:     binColor(best[0], buckets),
		G:     binColor(best[1], buckets),
		B:     binColor(best[2], buckets),
		Count: bestCount,
	}, true
}

// TraitAverages computes on-demand means of strength, mobility, and
// cooperation over the live set.
func (w *World) TraitAverages() TraitAverages {
	var strength, mobility, cooperation []float64
	query := w.filter.Query()
	for query.Next() {
		_, genome := query.Get()
		strength = append(strength, genome.Strength)
		mobility = append(mobility, genome.Mobility)
		cooperation = append(cooperation, genome.Cooperation)
	}
	if len(strength) == 0 {
		return TraitAverages{}
	}
	return TraitAverages{
		Strength:    stat.Mean(strength, nil),
		Mobility:    stat.Mean(mobility, nil),
		Cooperation: stat.Mean(cooperation, nil),
	}
}

// EnergyValues returns the live agents' energies, for window aggregation.
func (w *World) EnergyValues() []float64 {
	var out []float64
	query := w.filter.Query()
	for query.Next() {
		agent, _ := query.Get()
		out = append(out, agent.Energy)
	}
	return out
}

// colorBin maps a [0,1] channel value to its bucket index.
func colorBin(v float64, buckets int) int {
	return int(components.Clamp01(v) * float64(buckets))
}

// binColor reconstructs the approximate channel value of a bucket.
func binColor(bin, buckets int) float64 {
	if buckets <= 1 {
		return components.Clamp01(float64(bin))
	}
	return components.Clamp01(float64(bin) / float64(buckets-1))
}

// lessKey orders bucket keys so the dominant-cluster tie-break is stable
// regardless of map iteration order.
func lessKey(a, b [3]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}
