package components

// Agent holds the runtime state of one grid occupant. The genome lives in a
// separate component; together they make up an entity in the world's arena.
type Agent struct {
	ID     uint64 // process-unique, monotonically increasing, never reused
	X, Y   int    // grid cell; kept consistent with the grid between ticks
	Energy float64
	Age    int
	Alive  bool // cleared when the agent is marked for removal mid-tick
}

// MetabolicCost is the per-tick energy drain for an agent with the given
// genome: base + mobility and strength surcharges.
func MetabolicCost(g Genome, base, mobilityCoeff, strengthCoeff float64) float64 {
	return base + g.Mobility*mobilityCoeff + g.Strength*strengthCoeff
}
