// Package genetics implements the heritable-trait operators: random founder
// genomes, crossover, and mutation.
package genetics

import (
	"math/rand"

	"github.com/aquintela/pixelife/components"
)

// Random returns a founder genome with uniform random traits. GiveWay is
// scaled down by giveWayScale so yielding starts out rarer than fighting.
func Random(rng *rand.Rand, giveWayScale float64) components.Genome {
	return components.NewGenome(
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64()*giveWayScale,
	)
}

// Crossover returns the child genome of two parents: the component-wise
// arithmetic mean of their traits. Each child trait lies between its parents'
// values; mutation is applied separately by the caller.
func Crossover(a, b components.Genome) components.Genome {
	ta, tb := a.Traits(), b.Traits()
	var tc [components.TraitCount]float64
	for i := range tc {
		tc[i] = (ta[i] + tb[i]) / 2
	}
	return components.FromTraits(tc)
}

// Mutate perturbs each trait independently with probability rate, adding
// uniform noise in [-magnitude, +magnitude] and clamping to [0,1]. It reports
// whether at least one trait actually changed.
func Mutate(g *components.Genome, rng *rand.Rand, rate, magnitude float64) bool {
	t := g.Traits()
	changed := false
	for i := range t {
		if rng.Float64() >= rate {
			continue
		}
		delta := (rng.Float64()*2 - 1) * magnitude
		mutated := components.Clamp01(t[i] + delta)
		if mutated != t[i] {
			t[i] = mutated
			changed = true
		}
	}
	if changed {
		*g = components.FromTraits(t)
	}
	return changed
}
