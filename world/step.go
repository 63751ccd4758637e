package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/aquintela/pixelife/components"
	"github.com/aquintela/pixelife/telemetry"
)

// Step advances the simulation by exactly one tick.
//
// The sweep iterates an immutable snapshot of the live set captured at tick
// start, re-shuffled to a fresh permutation each tick. Structural changes
// (deaths, births) are collected during the sweep and applied in a single
// commit phase afterwards, so no agent is evaluated more than once and the
// grid/agent bookkeeping stays consistent between ticks.
func (w *World) Step() {
	w.tick++
	w.mutations = 0

	w.snapshot = w.snapshot[:0]
	query := w.filter.Query()
	for query.Next() {
		w.snapshot = append(w.snapshot, query.Entity())
	}
	w.rng.Shuffle(len(w.snapshot), func(i, j int) {
		w.snapshot[i], w.snapshot[j] = w.snapshot[j], w.snapshot[i]
	})

	w.dead = w.dead[:0]
	w.births = w.births[:0]

	for _, e := range w.snapshot {
		w.stepAgent(e)
	}

	w.commit()

	if period := w.cfg.Events.Period; period > 0 && w.tick%period == 0 {
		w.fireGlobalEvent()
	}
}

// stepAgent applies the per-agent rules for one turn of the sweep.
func (w *World) stepAgent(e ecs.Entity) {
	agent := w.agentMap.Get(e)

	// Marked dead earlier this tick by another agent's interaction.
	if !agent.Alive {
		return
	}
	// Drained below zero earlier this tick (reproduction cost, drought).
	if agent.Energy <= 0 {
		w.markDead(e, agent, telemetry.DeathStarved)
		return
	}

	genome := w.genomeMap.Get(e)
	energyCfg := &w.cfg.Energy

	agent.Age++
	agent.Energy -= components.MetabolicCost(*genome,
		energyCfg.MetabolicBase, energyCfg.MetabolicMobility, energyCfg.MetabolicStrength)
	if agent.Energy <= 0 {
		w.markDead(e, agent, telemetry.DeathStarved)
		return
	}

	if w.rng.Float64() < genome.Mobility {
		// Pick uniformly among staying put and every in-bounds neighbor.
		w.nbuf = w.grid.Neighbors(agent.X, agent.Y, w.nbuf[:0])
		pick := w.rng.Intn(len(w.nbuf) + 1)
		if pick > 0 {
			target := w.nbuf[pick-1]
			occupant := w.grid.At(target.X, target.Y)
			if occupant == (ecs.Entity{}) {
				w.moveAgent(e, agent, target)
			} else {
				w.resolveContest(e, agent, genome, occupant, target)
			}
		}
	}

	if agent.Alive && agent.Age > w.cfg.Agent.MaxAge {
		w.markDead(e, agent, telemetry.DeathAged)
	}
}

// moveAgent relocates a live agent into an empty cell and charges the move
// cost.
func (w *World) moveAgent(e ecs.Entity, agent *components.Agent, target Point) {
	w.grid.Set(agent.X, agent.Y, ecs.Entity{})
	agent.X, agent.Y = target.X, target.Y
	w.grid.Set(target.X, target.Y, e)
	agent.Energy -= w.cfg.Energy.MoveCost
	w.collector.RecordMove()
}

// markDead flags an agent for removal at commit time. Idempotent: a second
// mark on the same agent is a no-op.
func (w *World) markDead(e ecs.Entity, agent *components.Agent, cause telemetry.DeathCause) {
	if !agent.Alive {
		return
	}
	agent.Alive = false
	w.dead = append(w.dead, removal{entity: e, cause: cause})
}

// queueBirth defers offspring placement to the commit phase.
func (w *World) queueBirth(x, y int, genome components.Genome, energy float64) {
	w.births = append(w.births, birth{x: x, y: y, genome: genome, energy: energy})
}

// commit applies all removals and births collected during the sweep.
func (w *World) commit() {
	for _, r := range w.dead {
		agent := w.agentMap.Get(r.entity)
		// Clear the cell only if it still references the dying agent; it
		// may have been handed to someone else earlier this tick.
		if w.grid.At(agent.X, agent.Y) == r.entity {
			w.grid.Set(agent.X, agent.Y, ecs.Entity{})
		}
		w.ecs.RemoveEntity(r.entity)
		w.population--
		w.collector.RecordDeath(r.cause)
	}

	for _, b := range w.births {
		if !w.grid.Empty(b.x, b.y) {
			// Two births raced for the same vacated cell, or the cell was
			// reoccupied before commit. The offspring is silently lost.
			w.collector.RecordBirthLost()
			continue
		}
		w.spawn(b.x, b.y, b.genome, b.energy)
		w.collector.RecordBirth()
	}
}
