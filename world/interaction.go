package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/aquintela/pixelife/components"
	"github.com/aquintela/pixelife/genetics"
	"github.com/aquintela/pixelife/telemetry"
)

// resolveContest handles an initiator whose chosen move target is occupied.
// The branches are evaluated in fixed priority: initiator gives way,
// occupant gives way, reproduction, fight.
func (w *World) resolveContest(e ecs.Entity, agent *components.Agent, genome *components.Genome, occEntity ecs.Entity, target Point) {
	occupant := w.agentMap.Get(occEntity)
	occGenome := w.genomeMap.Get(occEntity)

	if w.rng.Float64() < genome.GiveWay {
		// Initiator forfeits the move and pays for the hesitation.
		agent.Energy -= w.cfg.Energy.GiveWayPenalty
		w.collector.RecordGiveWay()
		return
	}

	if w.rng.Float64() < occGenome.GiveWay {
		// Occupant tries to vacate into its first empty neighbor. Only if
		// that frees the contested cell does the initiator follow through.
		if dest, ok := w.grid.FirstEmptyNeighbor(occupant.X, occupant.Y); ok {
			w.grid.Set(occupant.X, occupant.Y, ecs.Entity{})
			occupant.X, occupant.Y = dest.X, dest.Y
			w.grid.Set(dest.X, dest.Y, occEntity)
			if w.grid.Empty(target.X, target.Y) {
				w.moveAgent(e, agent, target)
			}
		}
		w.collector.RecordGiveWay()
		return
	}

	compat := genome.ColorSimilarity(*occGenome)
	if w.rng.Float64() < genome.Cooperation*occGenome.Cooperation*compat {
		if w.reproduce(agent, genome, occupant, occGenome) {
			return
		}
		// No room for offspring: the encounter turns hostile.
	}

	w.fight(e, agent, genome, occEntity, occupant, occGenome)
}

// reproduce queues a child of the two parents into the initiator's first
// empty neighbor cell. Returns false when no such cell exists.
func (w *World) reproduce(agent *components.Agent, genome *components.Genome, occupant *components.Agent, occGenome *components.Genome) bool {
	cell, ok := w.grid.FirstEmptyNeighbor(agent.X, agent.Y)
	if !ok {
		return false
	}

	child := genetics.Crossover(*genome, *occGenome)
	childEnergy := (agent.Energy + occupant.Energy) * w.cfg.Energy.ChildFactor

	agent.Energy -= w.cfg.Energy.ReproduceCost
	occupant.Energy -= w.cfg.Derived.MateCost

	if genetics.Mutate(&child, w.rng, w.cfg.Mutation.Rate, w.cfg.Mutation.Magnitude) {
		w.mutations++
		w.collector.RecordMutation()
	}

	w.queueBirth(cell.X, cell.Y, child, childEnergy)
	return true
}

// fight resolves a contested cell by combat. A single draw against the
// initiator's win probability decides it; the loser is marked for removal
// and the winner collects the kill bonus.
func (w *World) fight(e ecs.Entity, agent *components.Agent, genome *components.Genome, occEntity ecs.Entity, occupant *components.Agent, occGenome *components.Genome) {
	w.collector.RecordFight()
	if w.fightWins(agent, genome, occupant, occGenome) {
		w.markDead(occEntity, occupant, telemetry.DeathKilled)
		agent.Energy += w.cfg.Energy.KillBonus
	} else {
		w.markDead(e, agent, telemetry.DeathKilled)
		occupant.Energy += w.cfg.Energy.KillBonus
	}
}

// fightWins draws the fight outcome. The initiator wins with probability
// score(initiator) / (score(initiator) + score(defender) + eps).
func (w *World) fightWins(agent *components.Agent, genome *components.Genome, occupant *components.Agent, occGenome *components.Genome) bool {
	scoreA := fightScore(agent, genome, w.cfg.Derived.FightEnergyNorm)
	scoreB := fightScore(occupant, occGenome, w.cfg.Derived.FightEnergyNorm)
	probA := scoreA / (scoreA + scoreB + 1e-9)
	return w.rng.Float64() < probA
}

// fightScore weighs strength against current energy reserves.
func fightScore(agent *components.Agent, genome *components.Genome, energyNorm float64) float64 {
	return genome.Strength*1.5 + agent.Energy/energyNorm
}
