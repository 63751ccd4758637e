// Package telemetry provides window-based simulation statistics, CSV output,
// and tick-timing collection.
package telemetry

// DeathCause classifies agent removals for window accounting.
type DeathCause uint8

const (
	DeathStarved DeathCause = iota // energy reached zero
	DeathAged                      // exceeded the maximum age
	DeathKilled                    // lost a fight
	DeathCulled                    // removed by a meteor event
)

// Collector accumulates engine events within stats windows. All recorders
// are safe on a nil receiver, so the engine can run without telemetry.
type Collector struct {
	births       int
	birthsLost   int
	deathStarved int
	deathAged    int
	deathKilled  int
	deathCulled  int
	fights       int
	giveWays     int
	moves        int
	mutations    int
	globalEvents int

	windowStartTick int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordBirth records a committed birth.
func (c *Collector) RecordBirth() {
	if c == nil {
		return
	}
	c.births++
}

// RecordBirthLost records a queued birth dropped at commit time.
func (c *Collector) RecordBirthLost() {
	if c == nil {
		return
	}
	c.birthsLost++
}

// RecordDeath records an agent removal.
func (c *Collector) RecordDeath(cause DeathCause) {
	if c == nil {
		return
	}
	switch cause {
	case DeathStarved:
		c.deathStarved++
	case DeathAged:
		c.deathAged++
	case DeathKilled:
		c.deathKilled++
	case DeathCulled:
		c.deathCulled++
	}
}

// RecordFight records a resolved fight.
func (c *Collector) RecordFight() {
	if c == nil {
		return
	}
	c.fights++
}

// RecordGiveWay records a contested move resolved by yielding.
func (c *Collector) RecordGiveWay() {
	if c == nil {
		return
	}
	c.giveWays++
}

// RecordMove records a relocation into an empty cell.
func (c *Collector) RecordMove() {
	if c == nil {
		return
	}
	c.moves++
}

// RecordMutation records an offspring whose genome changed under mutation.
func (c *Collector) RecordMutation() {
	if c == nil {
		return
	}
	c.mutations++
}

// RecordGlobalEvent records a meteor or drought.
func (c *Collector) RecordGlobalEvent() {
	if c == nil {
		return
	}
	c.globalEvents++
}

// Sample carries population-level values the engine exposes at window end;
// the collector cannot compute these from events alone.
type Sample struct {
	Population     int
	EnergyValues   []float64
	AvgStrength    float64
	AvgMobility    float64
	AvgCooperation float64
	DominantR      float64
	DominantG      float64
	DominantB      float64
	DominantCount  int
}

// Flush closes the current window: it folds the counters and the sample
// into a WindowStats and resets the counters for the next window.
func (c *Collector) Flush(windowEnd int, s Sample) WindowStats {
	mean, p10, p50, p90 := ComputeEnergyStats(s.EnergyValues)

	stats := WindowStats{
		WindowStart:    c.windowStartTick,
		WindowEnd:      windowEnd,
		Population:     s.Population,
		Births:         c.births,
		BirthsLost:     c.birthsLost,
		DeathsStarved:  c.deathStarved,
		DeathsAged:     c.deathAged,
		DeathsKilled:   c.deathKilled,
		DeathsCulled:   c.deathCulled,
		Fights:         c.fights,
		GiveWays:       c.giveWays,
		Moves:          c.moves,
		Mutations:      c.mutations,
		GlobalEvents:   c.globalEvents,
		EnergyMean:     mean,
		EnergyP10:      p10,
		EnergyP50:      p50,
		EnergyP90:      p90,
		AvgStrength:    s.AvgStrength,
		AvgMobility:    s.AvgMobility,
		AvgCooperation: s.AvgCooperation,
		DominantR:      s.DominantR,
		DominantG:      s.DominantG,
		DominantB:      s.DominantB,
		DominantCount:  s.DominantCount,
	}

	*c = Collector{windowStartTick: windowEnd}
	return stats
}
