// Package components defines ECS components for the simulation.
package components

import "math"

// TraitCount is the number of heritable traits in a genome.
const TraitCount = 7

// Genome holds the heritable traits of an agent. Every trait lives in [0,1];
// all construction paths go through Clamp01 so no out-of-range genome can be
// observed.
type Genome struct {
	ColorR      float64
	ColorG      float64
	ColorB      float64
	Strength    float64
	Mobility    float64
	Cooperation float64
	GiveWay     float64
}

// NewGenome builds a genome with every trait clamped to [0,1].
func NewGenome(r, g, b, strength, mobility, cooperation, giveWay float64) Genome {
	return Genome{
		ColorR:      Clamp01(r),
		ColorG:      Clamp01(g),
		ColorB:      Clamp01(b),
		Strength:    Clamp01(strength),
		Mobility:    Clamp01(mobility),
		Cooperation: Clamp01(cooperation),
		GiveWay:     Clamp01(giveWay),
	}
}

// Traits returns the genome as a fixed-order trait vector:
// colorR, colorG, colorB, strength, mobility, cooperation, giveWay.
func (g Genome) Traits() [TraitCount]float64 {
	return [TraitCount]float64{
		g.ColorR, g.ColorG, g.ColorB,
		g.Strength, g.Mobility, g.Cooperation, g.GiveWay,
	}
}

// FromTraits builds a clamped genome from a fixed-order trait vector.
func FromTraits(t [TraitCount]float64) Genome {
	return NewGenome(t[0], t[1], t[2], t[3], t[4], t[5], t[6])
}

// Color returns the display color channels in [0,1].
func (g Genome) Color() (r, gr, b float64) {
	return g.ColorR, g.ColorG, g.ColorB
}

// ColorSimilarity returns the cosine similarity of the two genomes' color
// vectors, clamped to [0,1]. It gates reproduction likelihood.
func (g Genome) ColorSimilarity(o Genome) float64 {
	dot := g.ColorR*o.ColorR + g.ColorG*o.ColorG + g.ColorB*o.ColorB
	magA := math.Sqrt(g.ColorR*g.ColorR+g.ColorG*g.ColorG+g.ColorB*g.ColorB) + 1e-9
	magB := math.Sqrt(o.ColorR*o.ColorR+o.ColorG*o.ColorG+o.ColorB*o.ColorB) + 1e-9
	return Clamp01(dot / (magA * magB))
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
