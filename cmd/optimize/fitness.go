package main

import (
	"math"
	"sync"

	"github.com/aquintela/pixelife/config"
	"github.com/aquintela/pixelife/telemetry"
	"github.com/aquintela/pixelife/world"
)

// Extinction thresholds: a run ends when the population is fully gone, or
// stays below minViablePop for extinctionGraceTicks consecutive ticks.
const (
	minViablePop         = 5
	extinctionGraceTicks = 1000
	warmupTicks          = 200
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 500,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int
	windowStats   []telemetry.WindowStats
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative survival ticks, scaled up by a quality bonus for runs
// that keep a substantial, evolving population rather than a frozen rump.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; each gets its own config and world.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(x, s)
			quality := fe.computeQuality(result.windowStats)
			results[idx] = seedResult{
				fitness: -float64(result.survivalTicks) * (1.0 + 0.2*quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until extinction or maxTicks.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	collector := telemetry.NewCollector()
	w := world.New(world.Options{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		InitialFill: cfg.World.InitialFill,
		Seed:        seed,
		Config:      cfg,
	})
	w.SetCollector(collector)

	result := &runResult{}
	belowTicks := 0

	for w.Tick() < fe.maxTicks {
		w.Step()

		if w.Tick()%fe.statsWindow == 0 {
			avgs := w.TraitAverages()
			result.windowStats = append(result.windowStats, collector.Flush(w.Tick(), telemetry.Sample{
				Population:     w.Population(),
				EnergyValues:   w.EnergyValues(),
				AvgStrength:    avgs.Strength,
				AvgMobility:    avgs.Mobility,
				AvgCooperation: avgs.Cooperation,
			}))
		}

		if w.Tick() < warmupTicks {
			continue
		}

		pop := w.Population()
		if pop == 0 {
			break
		}
		if pop < minViablePop {
			belowTicks++
			if belowTicks >= extinctionGraceTicks {
				break
			}
		} else {
			belowTicks = 0
		}
	}

	result.survivalTicks = w.Tick()
	return result
}

// computeQuality scores a run's window history in [0,1]: populations that
// stay large relative to the grid and keep mutating score higher.
func (fe *FitnessEvaluator) computeQuality(stats []telemetry.WindowStats) float64 {
	if len(stats) == 0 {
		return 0
	}

	cells := float64(fe.baseConfig.World.Width * fe.baseConfig.World.Height)
	var popScore, churnScore float64
	for _, s := range stats {
		popScore += math.Min(1, float64(s.Population)/(cells*0.1))
		if s.Births > 0 {
			churnScore += math.Min(1, float64(s.Mutations)/float64(s.Births))
		}
	}

	n := float64(len(stats))
	return 0.7*popScore/n + 0.3*churnScore/n
}

// copyConfig returns a deep-enough copy of the base config: every section
// is a value type, so a struct copy suffices.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
